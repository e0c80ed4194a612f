package public

import (
	"devfolio/internal/api/response"
	"devfolio/internal/db/models"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
ContactHandler 联系表单处理器
*/
type ContactHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewContactHandler(app *types.App) *ContactHandler {
	return &ContactHandler{
		app:    app,
		logger: zap.L().Named("public-contact-handler"),
	}
}

/*
ContactRequest 联系表单提交
*/
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=64"`
	Email   string `json:"email" binding:"required,email,max=128"`
	Subject string `json:"subject" binding:"max=128"`
	Body    string `json:"body" binding:"required,max=4096"`
}

/*
Submit 提交联系消息
功能：校验 → 落库（初始状态 NEW）。IP 仅存档用于滥用排查，不对外输出。
路由：POST /api/v1/contact
*/
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	msg := &models.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Body:     req.Body,
		ClientIP: c.ClientIP(),
	}
	if err := h.app.Content.SubmitContactMessage(c.Request.Context(), msg); err != nil {
		h.logger.Error("保存联系消息失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"id": msg.ID, "status": msg.Status})
}
