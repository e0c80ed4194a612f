package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

/*
SecurityHeaders 安全响应头中间件
功能：为所有 HTTP 响应添加安全防护头：
  - X-Content-Type-Options: 阻止浏览器 MIME 嗅探
  - X-Frame-Options: 阻止页面被嵌入 iframe（防点击劫持）
  - Referrer-Policy: 限制 Referer 头泄漏完整 URL
  - Permissions-Policy: 禁用不必要的浏览器功能
  - Cache-Control: API 响应不缓存
  - X-Robots-Tag: 管理后台不被搜索引擎收录（作品集公开页正常收录）
*/
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		/* API 响应不缓存；公开内容的缓存由前面的 CDN/代理层按需覆盖 */
		if strings.HasPrefix(path, "/api/") {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
			c.Header("Pragma", "no-cache")
		}

		/* 后台页面与管理 API 不进搜索索引 */
		if strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/api/v1/admin") {
			c.Header("X-Robots-Tag", "noindex, nofollow")
		}

		c.Next()
	}
}
