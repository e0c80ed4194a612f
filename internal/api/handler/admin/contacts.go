package admin

import (
	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
ContactHandler 联系消息管理处理器
*/
type ContactHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewContactHandler(app *types.App) *ContactHandler {
	return &ContactHandler{
		app:    app,
		logger: zap.L().Named("admin-contact-handler"),
	}
}

/*
List 分页列出联系消息，可按状态过滤
路由：GET /api/v1/admin/contacts?status=NEW
*/
func (h *ContactHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	status := models.ContactStatus(c.Query("status"))
	if status != "" && !models.ValidContactStatus(status) {
		response.BadRequest(c, "无效的状态过滤值")
		return
	}

	messages, total, err := h.app.Content.ListContactMessages(c.Request.Context(), page, limit, status)
	if err != nil {
		h.logger.Error("查询联系消息失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Paged(c, messages, page, limit, total)
}

/*
Get 获取单条联系消息
路由：GET /api/v1/admin/contacts/:id
*/
func (h *ContactHandler) Get(c *gin.Context) {
	id := c.Param("id")
	msg, err := h.app.Content.GetContactMessage(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询联系消息失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if msg == nil {
		response.NotFound(c, "消息不存在")
		return
	}
	response.OK(c, msg)
}

/*
StatusRequest 状态流转请求
*/
type StatusRequest struct {
	Status models.ContactStatus `json:"status" binding:"required"`
}

/*
UpdateStatus 更新消息处理状态
功能：状态必须是已定义的枚举；流转到 RESPONDED 时服务层写入响应时间戳
路由：PATCH /api/v1/admin/contacts/:id/status
*/
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}
	if !models.ValidContactStatus(req.Status) {
		response.BadRequest(c, "无效的状态值")
		return
	}

	msg, err := h.app.Content.UpdateContactStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.logger.Error("更新消息状态失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if msg == nil {
		response.NotFound(c, "消息不存在")
		return
	}
	response.OK(c, msg)
}

/*
Delete 删除联系消息
路由：DELETE /api/v1/admin/contacts/:id
*/
func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	msg, err := h.app.Content.GetContactMessage(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("查询联系消息失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	if msg == nil {
		response.NotFound(c, "消息不存在")
		return
	}

	if err := h.app.Content.DeleteContactMessage(c.Request.Context(), id); err != nil {
		h.logger.Error("删除联系消息失败", zap.String("id", id), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.NoContent(c)
}
