package public

import (
	"devfolio/internal/api/response"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
ViewHandler 页面访问上报处理器
*/
type ViewHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewViewHandler(app *types.App) *ViewHandler {
	return &ViewHandler{
		app:    app,
		logger: zap.L().Named("public-view-handler"),
	}
}

/*
ViewRequest 访问上报
*/
type ViewRequest struct {
	Path     string `json:"path" binding:"required,max=256"`
	Referrer string `json:"referrer" binding:"max=256"`
}

/*
Record 上报一次页面访问
功能：前端 beacon 上报。统计是旁路功能，落库失败也返回 204，
不向访客暴露统计链路的异常。
路由：POST /api/v1/views
*/
func (h *ViewHandler) Record(c *gin.Context) {
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效")
		return
	}

	err := h.app.Analytics.RecordPageView(
		c.Request.Context(),
		req.Path,
		req.Referrer,
		c.ClientIP(),
		c.Request.UserAgent(),
	)
	if err != nil {
		h.logger.Debug("记录页面访问失败", zap.String("path", req.Path), zap.Error(err))
	}
	response.NoContent(c)
}
