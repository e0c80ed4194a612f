package middleware

import (
	"strings"

	"devfolio/internal/api/response"
	"devfolio/internal/auth"

	"github.com/gin-gonic/gin"
)

/* SecretProvider 提供当前 JWT 签名密钥（由密钥管理器实现） */
type SecretProvider interface {
	GetSecret() string
}

/*
AdminAuth 管理 API 认证中间件
功能：提取凭据（优先 Authorization: Bearer 头，缺失时回退到
Cookie）→ 单一校验入口 auth.VerifyToken → 通过则注入身份，
否则一律返回 401 {"error":"Unauthorized"}。
凭据缺失、签名无效、已过期对客户端不可区分，防止探测。
*/
func AdminAuth(secrets SecretProvider, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c, cookieName)
		if tokenStr == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, ok := auth.VerifyToken(tokenStr, secrets.GetSecret())
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

/*
extractToken 提取请求携带的凭据
优先级：Authorization: Bearer <token> 头 > 凭据 Cookie。
头存在但格式不是 Bearer 时视为无凭据，不回退到 Cookie 之外的来源。
*/
func extractToken(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr != authHeader && tokenStr != "" {
			return tokenStr
		}
		return ""
	}

	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			return cookie
		}
	}
	return ""
}
