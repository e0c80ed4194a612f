package middleware

import (
	"net/http"
	"strings"

	"devfolio/internal/auth"

	"github.com/gin-gonic/gin"
)

/* AdminLoginPath 管理端登录页路径，门卫重定向目标 */
const AdminLoginPath = "/admin/login"

/*
AdminGate 管理页面门卫中间件
功能：拦截 /admin 下的页面请求，校验凭据 Cookie（页面导航不携带
Authorization 头，Cookie 是唯一凭据来源）。校验失败时 302 重定向到
登录页而非返回 401——浏览器地址栏请求需要的是导航，不是 JSON。
登录页自身始终放行，否则已登出用户会陷入重定向循环。
*/
func AdminGate(secrets SecretProvider, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		/* 登录页与其子资源放行 */
		if path == AdminLoginPath || strings.HasPrefix(path, AdminLoginPath+"/") {
			c.Next()
			return
		}

		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}

		if _, ok := auth.VerifyToken(cookie, secrets.GetSecret()); !ok {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
