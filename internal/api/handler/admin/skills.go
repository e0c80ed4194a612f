package admin

import (
	"strconv"

	"devfolio/internal/api/response"
	"devfolio/internal/db/dao"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
SkillHandler 技能管理处理器
*/
type SkillHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewSkillHandler(app *types.App) *SkillHandler {
	return &SkillHandler{
		app:    app,
		logger: zap.L().Named("admin-skill-handler"),
	}
}

/* pageParams 读取并校正分页参数 */
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return dao.SanitizePagination(page, limit, 100)
}

/*
List 分页列出技能
路由：GET /api/v1/admin/skills
*/
func (h *SkillHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	skills, total, err := h.app.Content.ListSkillsPaged(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("查询技能列表失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Paged(c, skills, page, limit, total)
}

/*
SkillRequest 技能写入请求
*/
type SkillRequest struct {
	Name      string `json:"name" binding:"required,max=64"`
	Category  string `json:"category" binding:"required,max=32"`
	Level     int    `json:"level" binding:"min=0,max=100"`
	SortOrder int    `json:"sort_order"`
}

/*
Create 创建技能
路由：POST /api/v1/admin/skills
*/
func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	skill := &models.Skill{
		Name:      req.Name,
		Category:  req.Category,
		Level:     req.Level,
		SortOrder: req.SortOrder,
	}
	if err := h.app.Content.CreateSkill(c.Request.Context(), skill); err != nil {
		h.logger.Error("创建技能失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, skill)
}

/*
Update 更新技能
路由：PUT /api/v1/admin/skills/:id
*/
func (h *SkillHandler) Update(c *gin.Context) {
	id := c.Param("id")

	skill, err := h.app.Content.GetSkill(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询技能失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if skill == nil {
		response.NotFound(c, "技能不存在")
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	skill.Name = req.Name
	skill.Category = req.Category
	skill.Level = req.Level
	skill.SortOrder = req.SortOrder

	if err := h.app.Content.UpdateSkill(c.Request.Context(), skill); err != nil {
		h.logger.Error("更新技能失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, skill)
}

/*
Delete 删除技能
路由：DELETE /api/v1/admin/skills/:id
*/
func (h *SkillHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	skill, err := h.app.Content.GetSkill(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询技能失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if skill == nil {
		response.NotFound(c, "技能不存在")
		return
	}

	if err := h.app.Content.DeleteSkill(c.Request.Context(), id); err != nil {
		h.logger.Error("删除技能失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
