package api

import (
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"strings"

	"devfolio/internal/api/middleware"
	"devfolio/internal/pkg/logger"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
SetupFrontend 配置管理后台页面服务
功能：从配置目录提供管理后台 SPA 的静态文件，/admin 下全部页面
经过门卫中间件——凭据 Cookie 无效时 302 到登录页，登录页自身放行。
目录不存在或缺少 index.html 时跳过挂载，纯 API 部署不受影响。
*/
func SetupFrontend(router *gin.Engine, app *types.App) {
	dir := app.Config.Server.AdminWebDir
	if dir == "" {
		return
	}

	staticFS := os.DirFS(dir)
	indexHTML, err := fs.ReadFile(staticFS, "index.html")
	if err != nil {
		logger.Info("管理后台静态资源不可用，跳过页面路由",
			zap.String("dir", dir), zap.Error(err))
		return
	}

	gate := middleware.AdminGate(app.JWT, app.Config.Auth.CookieName)
	serve := adminPageHandler(staticFS, indexHTML)

	router.GET("/admin", gate, serve)
	router.GET("/admin/*path", gate, serve)
}

/*
adminPageHandler 管理页面请求处理
功能：精确文件匹配 → 目录 index.html → SPA fallback 根 index.html
*/
func adminPageHandler(staticFS fs.FS, indexHTML []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := strings.TrimPrefix(c.Request.URL.Path, "/admin")
		cleanPath := strings.TrimPrefix(path.Clean(reqPath), "/")

		/* 精确文件匹配（JS/CSS/图片/字体等静态资源） */
		if cleanPath != "" && cleanPath != "." {
			if data, err := fs.ReadFile(staticFS, cleanPath); err == nil {
				contentType := mime.TypeByExtension(path.Ext(cleanPath))
				if contentType == "" {
					contentType = "application/octet-stream"
				}
				/* assets/ 下的哈希资源设置长缓存 */
				if strings.HasPrefix(cleanPath, "assets/") {
					c.Header("Cache-Control", "public, max-age=31536000, immutable")
				}
				c.Data(http.StatusOK, contentType, data)
				return
			}

			/* 目录请求 → 尝试 path/index.html */
			indexPath := path.Join(cleanPath, "index.html")
			if data, err := fs.ReadFile(staticFS, indexPath); err == nil {
				c.Header("Cache-Control", "no-cache")
				c.Data(http.StatusOK, "text/html; charset=utf-8", data)
				return
			}
		}

		/* SPA fallback：返回根 index.html，由客户端路由接管 */
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	}
}
