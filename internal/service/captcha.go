package service

import (
	"fmt"
	"time"

	"devfolio/internal/config"

	"github.com/mojocn/base64Captcha"
	"go.uber.org/zap"
)

/*
CaptchaService 登录图片验证码服务
功能：为管理员登录提供可选的图片验证码，降低暴力破解风险。
验证码存储在进程内存中，按配置的过期时间自动失效；
验证一次后立即销毁，不可重放。
*/
type CaptchaService struct {
	captcha *base64Captcha.Captcha
	enabled bool
	logger  *zap.Logger
}

/*
NewCaptchaService 创建验证码服务
*/
func NewCaptchaService(cfg *config.CaptchaConfig) *CaptchaService {
	width := cfg.ImageWidth
	if width <= 0 {
		width = 240
	}
	height := cfg.ImageHeight
	if height <= 0 {
		height = 80
	}
	length := cfg.CodeLength
	if length <= 0 {
		length = 6
	}
	expiration := time.Duration(cfg.Expiration) * time.Second
	if expiration <= 0 {
		expiration = 5 * time.Minute
	}

	driver := base64Captcha.NewDriverDigit(height, width, length, 0.7, 80)
	store := base64Captcha.NewMemoryStore(base64Captcha.GCLimitNumber, expiration)

	return &CaptchaService{
		captcha: base64Captcha.NewCaptcha(driver, store),
		enabled: cfg.Enabled,
		logger:  zap.L().Named("captcha-service"),
	}
}

/* Enabled 登录是否要求验证码 */
func (s *CaptchaService) Enabled() bool {
	return s.enabled
}

/*
Generate 生成验证码
功能：返回验证码 ID 和 base64 编码的 PNG 图片
*/
func (s *CaptchaService) Generate() (id, image string, err error) {
	id, image, _, err = s.captcha.Generate()
	if err != nil {
		return "", "", fmt.Errorf("生成验证码失败: %w", err)
	}
	return id, image, nil
}

/*
Verify 验证并销毁验证码
功能：验证成功或失败均销毁该 ID，防止重放
*/
func (s *CaptchaService) Verify(id, answer string) bool {
	if id == "" || answer == "" {
		return false
	}
	return s.captcha.Store.Verify(id, answer, true)
}
