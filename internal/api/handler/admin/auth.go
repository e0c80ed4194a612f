package admin

import (
	"net/http"
	"time"

	"devfolio/internal/api/middleware"
	"devfolio/internal/api/response"
	"devfolio/internal/auth"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
AuthHandler 管理端认证处理器
功能：处理管理员登录、登出和会话校验
*/
type AuthHandler struct {
	app    *types.App
	logger *zap.Logger
}

/*
NewAuthHandler 创建认证处理器
*/
func NewAuthHandler(app *types.App) *AuthHandler {
	return &AuthHandler{
		app:    app,
		logger: zap.L().Named("auth-handler"),
	}
}

/*
LoginRequest 登录请求
*/
type LoginRequest struct {
	Username    string `json:"username" binding:"required,max=32"`
	Password    string `json:"password" binding:"required,max=128"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

/*
LoginResponse 登录响应
令牌同时通过响应体和 HttpOnly Cookie 下发：
Cookie 供页面导航的门卫校验，响应体供 API 客户端作 Bearer 头
*/
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}

/*
Login 管理员登录
功能：验证码校验（如启用）→ 凭据认证 → 签发凭据 → 写 Cookie 并返回令牌
路由：POST /api/v1/admin/auth/login
*/
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效")
		return
	}

	/* 验证码检查（如果启用） */
	if h.app.Captcha.Enabled() {
		if !h.app.Captcha.Verify(req.CaptchaID, req.CaptchaCode) {
			response.BadRequest(c, "验证码无效或已过期")
			return
		}
	}

	user, err := h.app.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Debug("登录认证失败",
			zap.String("username", req.Username),
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err))
		/* 统一返回 401，防止用户名枚举攻击 */
		response.Unauthorized(c)
		return
	}

	ttl := time.Duration(h.app.Config.Auth.JWTExpiration) * time.Hour
	token, err := auth.GenerateToken(user.ID, user.Username, string(user.Role), h.app.JWT.GetSecret(), ttl)
	if err != nil {
		h.logger.Error("签发凭据失败", zap.Error(err))
		response.InternalError(c)
		return
	}

	h.setAuthCookie(c, token, int(ttl.Seconds()))

	response.OK(c, LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		ExpiresAt: time.Now().Add(ttl).Unix(),
	})
}

/*
Logout 管理员登出
功能：服务端清除凭据 Cookie（MaxAge<0 即刻过期），
不依赖客户端删除——客户端遗忘 Cookie 不等于 Cookie 失效
路由：POST /api/v1/admin/auth/logout
*/
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	response.OK(c, gin.H{"message": "已登出"})
}

/*
Check 会话校验
功能：供管理界面启动时解析会话状态。经过认证中间件才能到达，
到达即代表凭据有效，返回当前身份。
路由：GET /api/v1/admin/auth/check
*/
func (h *AuthHandler) Check(c *gin.Context) {
	response.OK(c, gin.H{
		"user_id":  middleware.GetUserID(c),
		"username": middleware.GetUsername(c),
		"role":     middleware.GetRole(c),
	})
}

/* setAuthCookie 写入/清除凭据 Cookie，HttpOnly + SameSite=Lax */
func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.app.Config.Auth.CookieName,
		token,
		maxAge,
		"/",
		"",
		h.app.Config.Auth.CookieSecure,
		true,
	)
}
