package admin

import (
	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
ProjectHandler 项目管理处理器
*/
type ProjectHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewProjectHandler(app *types.App) *ProjectHandler {
	return &ProjectHandler{
		app:    app,
		logger: zap.L().Named("admin-project-handler"),
	}
}

/*
List 分页列出项目
路由：GET /api/v1/admin/projects
*/
func (h *ProjectHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	projects, total, err := h.app.Content.ListProjectsPaged(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("查询项目列表失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Paged(c, projects, page, limit, total)
}

/*
Get 获取单个项目
路由：GET /api/v1/admin/projects/:id
*/
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")
	project, err := h.app.Content.GetProject(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询项目失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if project == nil {
		response.NotFound(c, "项目不存在")
		return
	}
	response.OK(c, project)
}

/*
ProjectRequest 项目写入请求
*/
type ProjectRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Slug        string `json:"slug" binding:"required,max=128"`
	Summary     string `json:"summary" binding:"max=512"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack" binding:"max=512"`
	RepoURL     string `json:"repo_url" binding:"omitempty,url,max=256"`
	LiveURL     string `json:"live_url" binding:"omitempty,url,max=256"`
	CoverImage  string `json:"cover_image" binding:"max=256"`
	Featured    bool   `json:"featured"`
	SortOrder   int    `json:"sort_order"`
}

/*
Create 创建项目
路由：POST /api/v1/admin/projects
*/
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	project := &models.Project{
		Title:       req.Title,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Description: req.Description,
		TechStack:   req.TechStack,
		RepoURL:     req.RepoURL,
		LiveURL:     req.LiveURL,
		CoverImage:  req.CoverImage,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
	}
	if err := h.app.Content.CreateProject(c.Request.Context(), project); err != nil {
		h.logger.Error("创建项目失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, project)
}

/*
Update 更新项目
路由：PUT /api/v1/admin/projects/:id
*/
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")

	project, err := h.app.Content.GetProject(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询项目失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if project == nil {
		response.NotFound(c, "项目不存在")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	project.Title = req.Title
	project.Slug = req.Slug
	project.Summary = req.Summary
	project.Description = req.Description
	project.TechStack = req.TechStack
	project.RepoURL = req.RepoURL
	project.LiveURL = req.LiveURL
	project.CoverImage = req.CoverImage
	project.Featured = req.Featured
	project.SortOrder = req.SortOrder

	if err := h.app.Content.UpdateProject(c.Request.Context(), project); err != nil {
		h.logger.Error("更新项目失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, project)
}

/*
Delete 删除项目
路由：DELETE /api/v1/admin/projects/:id
*/
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	project, err := h.app.Content.GetProject(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询项目失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if project == nil {
		response.NotFound(c, "项目不存在")
		return
	}

	if err := h.app.Content.DeleteProject(c.Request.Context(), id); err != nil {
		h.logger.Error("删除项目失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
