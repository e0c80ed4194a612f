package public

import (
	"strconv"

	"devfolio/internal/api/response"
	"devfolio/internal/db/dao"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
BlogHandler 公开博客处理器
*/
type BlogHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewBlogHandler(app *types.App) *BlogHandler {
	return &BlogHandler{
		app:    app,
		logger: zap.L().Named("public-blog-handler"),
	}
}

/*
List 分页列出已发布文章，可按标签过滤
路由：GET /api/v1/blog?page=1&limit=10&tag=go
*/
func (h *BlogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = dao.SanitizePagination(page, limit, 50)
	tag := c.Query("tag")

	posts, total, err := h.app.Content.ListPublishedPosts(c.Request.Context(), page, limit, tag)
	if err != nil {
		h.logger.Error("查询文章列表失败", zap.Error(err))
		response.Paged(c, nil, page, limit, 0)
		return
	}
	response.Paged(c, posts, page, limit, total)
}

/*
BySlug 已发布文章详情（自增阅读数）
路由：GET /api/v1/blog/:slug
*/
func (h *BlogHandler) BySlug(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.app.Content.GetPublishedPostBySlug(c.Request.Context(), slug)
	if err != nil {
		h.logger.Error("查询文章失败", zap.String("slug", slug), zap.Error(err))
		response.InternalError(c)
		return
	}
	if post == nil {
		response.NotFound(c, "文章不存在")
		return
	}
	response.OK(c, post)
}
