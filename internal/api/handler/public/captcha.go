package public

import (
	"devfolio/internal/api/response"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
CaptchaHandler 登录验证码处理器
验证码在登录前获取，因此挂在公开路由组；是否要求验证码由配置决定。
*/
type CaptchaHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewCaptchaHandler(app *types.App) *CaptchaHandler {
	return &CaptchaHandler{
		app:    app,
		logger: zap.L().Named("captcha-handler"),
	}
}

/*
Config 验证码开关状态
功能：登录页据此决定是否渲染验证码输入框
路由：GET /api/v1/captcha/config
*/
func (h *CaptchaHandler) Config(c *gin.Context) {
	response.OK(c, gin.H{"enabled": h.app.Captcha.Enabled()})
}

/*
Image 生成图片验证码
路由：GET /api/v1/captcha/image
*/
func (h *CaptchaHandler) Image(c *gin.Context) {
	if !h.app.Captcha.Enabled() {
		response.NotFound(c, "验证码未启用")
		return
	}

	id, image, err := h.app.Captcha.Generate()
	if err != nil {
		h.logger.Error("生成验证码失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"captcha_id": id, "image": image})
}
