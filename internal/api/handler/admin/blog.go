package admin

import (
	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
BlogHandler 博客文章管理处理器
*/
type BlogHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewBlogHandler(app *types.App) *BlogHandler {
	return &BlogHandler{
		app:    app,
		logger: zap.L().Named("admin-blog-handler"),
	}
}

/*
List 分页列出全部文章（含未发布）
路由：GET /api/v1/admin/blog
*/
func (h *BlogHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	posts, total, err := h.app.Content.ListPostsPaged(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error("查询文章列表失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Paged(c, posts, page, limit, total)
}

/*
Get 获取单篇文章
路由：GET /api/v1/admin/blog/:id
*/
func (h *BlogHandler) Get(c *gin.Context) {
	id := c.Param("id")
	post, err := h.app.Content.GetPost(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询文章失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "文章不存在")
		return
	}
	response.OK(c, post)
}

/*
BlogPostRequest 文章写入请求
*/
type BlogPostRequest struct {
	Title     string `json:"title" binding:"required,max=128"`
	Slug      string `json:"slug" binding:"required,max=128"`
	Excerpt   string `json:"excerpt" binding:"max=512"`
	Content   string `json:"content"`
	Tags      string `json:"tags" binding:"max=256"`
	Published bool   `json:"published"`
}

/*
Create 创建文章
路由：POST /api/v1/admin/blog
*/
func (h *BlogHandler) Create(c *gin.Context) {
	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	post := &models.BlogPost{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Tags:      req.Tags,
		Published: req.Published,
	}
	if err := h.app.Content.CreatePost(c.Request.Context(), post); err != nil {
		h.logger.Error("创建文章失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, post)
}

/*
Update 更新文章
路由：PUT /api/v1/admin/blog/:id
*/
func (h *BlogHandler) Update(c *gin.Context) {
	id := c.Param("id")

	post, err := h.app.Content.GetPost(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询文章失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "文章不存在")
		return
	}

	var req BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Tags = req.Tags
	post.Published = req.Published

	if err := h.app.Content.UpdatePost(c.Request.Context(), post); err != nil {
		h.logger.Error("更新文章失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, post)
}

/*
Delete 删除文章
路由：DELETE /api/v1/admin/blog/:id
*/
func (h *BlogHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	post, err := h.app.Content.GetPost(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询文章失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "文章不存在")
		return
	}

	if err := h.app.Content.DeletePost(c.Request.Context(), id); err != nil {
		h.logger.Error("删除文章失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
