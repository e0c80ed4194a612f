package admin

import (
	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
CaseStudyHandler 案例分析管理处理器
*/
type CaseStudyHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewCaseStudyHandler(app *types.App) *CaseStudyHandler {
	return &CaseStudyHandler{
		app:    app,
		logger: zap.L().Named("admin-casestudy-handler"),
	}
}

/*
List 分页列出案例分析
路由：GET /api/v1/admin/case-studies
*/
func (h *CaseStudyHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	studies, total, err := h.app.Content.ListCaseStudiesPaged(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("查询案例列表失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Paged(c, studies, page, limit, total)
}

/*
Get 获取单个案例分析
路由：GET /api/v1/admin/case-studies/:id
*/
func (h *CaseStudyHandler) Get(c *gin.Context) {
	id := c.Param("id")
	study, err := h.app.Content.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询案例失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if study == nil {
		response.NotFound(c, "案例不存在")
		return
	}
	response.OK(c, study)
}

/*
CaseStudyRequest 案例分析写入请求
*/
type CaseStudyRequest struct {
	Title     string `json:"title" binding:"required,max=128"`
	Slug      string `json:"slug" binding:"required,max=128"`
	ProjectID string `json:"project_id" binding:"max=36"`
	Problem   string `json:"problem"`
	Approach  string `json:"approach"`
	Outcome   string `json:"outcome"`
	Published bool   `json:"published"`
}

/*
validateProjectRef 校验案例引用的项目存在
*/
func (h *CaseStudyHandler) validateProjectRef(c *gin.Context, projectID string) bool {
	if projectID == "" {
		return true
	}
	project, err := h.app.Content.GetProject(c.Request.Context(), projectID)
	if err != nil {
		h.logger.Error("查询关联项目失败", zap.String("project_id", projectID), zap.Error(err))
		response.InternalError(c)
		return false
	}
	if project == nil {
		response.BadRequest(c, "关联的项目不存在")
		return false
	}
	return true
}

/*
Create 创建案例分析
路由：POST /api/v1/admin/case-studies
*/
func (h *CaseStudyHandler) Create(c *gin.Context) {
	var req CaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	if !h.validateProjectRef(c, req.ProjectID) {
		return
	}

	study := &models.CaseStudy{
		Title:     req.Title,
		Slug:      req.Slug,
		ProjectID: req.ProjectID,
		Problem:   req.Problem,
		Approach:  req.Approach,
		Outcome:   req.Outcome,
		Published: req.Published,
	}
	if err := h.app.Content.CreateCaseStudy(c.Request.Context(), study); err != nil {
		h.logger.Error("创建案例失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, study)
}

/*
Update 更新案例分析
路由：PUT /api/v1/admin/case-studies/:id
*/
func (h *CaseStudyHandler) Update(c *gin.Context) {
	id := c.Param("id")

	study, err := h.app.Content.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询案例失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if study == nil {
		response.NotFound(c, "案例不存在")
		return
	}

	var req CaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	if !h.validateProjectRef(c, req.ProjectID) {
		return
	}

	study.Title = req.Title
	study.Slug = req.Slug
	study.ProjectID = req.ProjectID
	study.Problem = req.Problem
	study.Approach = req.Approach
	study.Outcome = req.Outcome
	study.Published = req.Published

	if err := h.app.Content.UpdateCaseStudy(c.Request.Context(), study); err != nil {
		h.logger.Error("更新案例失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, study)
}

/*
Delete 删除案例分析
路由：DELETE /api/v1/admin/case-studies/:id
*/
func (h *CaseStudyHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	study, err := h.app.Content.GetCaseStudy(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询案例失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if study == nil {
		response.NotFound(c, "案例不存在")
		return
	}

	if err := h.app.Content.DeleteCaseStudy(c.Request.Context(), id); err != nil {
		h.logger.Error("删除案例失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
