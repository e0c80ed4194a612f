package admin

import (
	"time"

	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
ExperienceHandler 工作经历管理处理器
*/
type ExperienceHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewExperienceHandler(app *types.App) *ExperienceHandler {
	return &ExperienceHandler{
		app:    app,
		logger: zap.L().Named("admin-experience-handler"),
	}
}

/*
List 列出全部工作经历
路由：GET /api/v1/admin/experience
*/
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.app.Content.ListExperiences(c.Request.Context())
	if err != nil {
		h.logger.Error("查询工作经历失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, experiences)
}

/*
ExperienceRequest 工作经历写入请求
Current 为 true 时 EndAt 被忽略并清空
*/
type ExperienceRequest struct {
	Role       string     `json:"role" binding:"required,max=128"`
	Company    string     `json:"company" binding:"required,max=128"`
	Location   string     `json:"location" binding:"max=64"`
	StartAt    time.Time  `json:"start_at" binding:"required"`
	EndAt      *time.Time `json:"end_at"`
	Current    bool       `json:"current"`
	Highlights string     `json:"highlights"`
}

/* validate 校验时间区间合法性 */
func (r *ExperienceRequest) validate() string {
	if r.Current {
		r.EndAt = nil
		return ""
	}
	if r.EndAt != nil && r.EndAt.Before(r.StartAt) {
		return "结束时间不能早于开始时间"
	}
	return ""
}

/*
Create 创建工作经历
路由：POST /api/v1/admin/experience
*/
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(c, msg)
		return
	}

	exp := &models.Experience{
		Role:       req.Role,
		Company:    req.Company,
		Location:   req.Location,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Current:    req.Current,
		Highlights: req.Highlights,
	}
	if err := h.app.Content.CreateExperience(c.Request.Context(), exp); err != nil {
		h.logger.Error("创建工作经历失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, exp)
}

/*
Update 更新工作经历
路由：PUT /api/v1/admin/experience/:id
*/
func (h *ExperienceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	exp, err := h.app.Content.GetExperience(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询工作经历失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if exp == nil {
		response.NotFound(c, "工作经历不存在")
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		response.BadRequest(c, msg)
		return
	}

	exp.Role = req.Role
	exp.Company = req.Company
	exp.Location = req.Location
	exp.StartAt = req.StartAt
	exp.EndAt = req.EndAt
	exp.Current = req.Current
	exp.Highlights = req.Highlights

	if err := h.app.Content.UpdateExperience(c.Request.Context(), exp); err != nil {
		h.logger.Error("更新工作经历失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, exp)
}

/*
Delete 删除工作经历
路由：DELETE /api/v1/admin/experience/:id
*/
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	exp, err := h.app.Content.GetExperience(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询工作经历失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if exp == nil {
		response.NotFound(c, "工作经历不存在")
		return
	}

	if err := h.app.Content.DeleteExperience(c.Request.Context(), id); err != nil {
		h.logger.Error("删除工作经历失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
