package api

import (
	"time"

	"devfolio/internal/api/handler/admin"
	"devfolio/internal/api/handler/public"
	"devfolio/internal/api/middleware"
	"devfolio/internal/api/response"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 设置路由
func SetupRouter(app *types.App) *gin.Engine {
	// 设置Gin模式
	if app.Config.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(app.Config.Server.CORSAllowedOrigins))
	router.Use(middleware.BodyLimit(2 << 20)) /* 2MB，博文编辑的 Markdown 体量足够 */

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"redis":  app.DB.HasRedis(),
		})
	})

	/*
		Prometheus /metrics 包含敏感运行指标，
		仅允许本地/内网访问，生产环境应通过反向代理进一步限制。
	*/
	router.GET("/metrics", localOnlyGuard(), gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		/* ---------- 公开接口 ---------- */
		contentHandler := public.NewContentHandler(app)
		blogHandler := public.NewBlogHandler(app)
		contactHandler := public.NewContactHandler(app)
		viewHandler := public.NewViewHandler(app)
		captchaHandler := public.NewCaptchaHandler(app)

		v1.GET("/profile", contentHandler.Profile)
		v1.GET("/skills", contentHandler.Skills)
		v1.GET("/projects", contentHandler.Projects)
		v1.GET("/projects/:slug", contentHandler.ProjectBySlug)
		v1.GET("/case-studies", contentHandler.CaseStudies)
		v1.GET("/case-studies/:slug", contentHandler.CaseStudyBySlug)
		v1.GET("/experience", contentHandler.Experience)
		v1.GET("/blog", blogHandler.List)
		v1.GET("/blog/:slug", blogHandler.BySlug)

		/* 表单提交限流：每 IP 每 15 分钟 10 次，防刷 */
		contactLimiter := middleware.NewIPRateLimiter(10, 15*time.Minute)
		v1.POST("/contact", contactLimiter.Middleware(), contactHandler.Submit)
		v1.POST("/views", viewHandler.Record)

		v1.GET("/captcha/config", captchaHandler.Config)
		v1.GET("/captcha/image", captchaHandler.Image)

		/* ---------- 管理接口 ---------- */
		adminGroup := v1.Group("/admin")
		{
			authHandler := admin.NewAuthHandler(app)

			/* 登录限流器：每个 IP 每 15 分钟最多 10 次登录尝试 */
			loginLimiter := middleware.NewIPRateLimiter(10, 15*time.Minute)
			adminGroup.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)

			/* 以下全部经过认证中间件，凭据无效统一 401 */
			authed := adminGroup.Group("")
			authed.Use(middleware.AdminAuth(app.JWT, app.Config.Auth.CookieName))
			{
				authed.POST("/auth/logout", authHandler.Logout)
				authed.GET("/auth/check", authHandler.Check)

				profileHandler := admin.NewProfileHandler(app)
				authed.GET("/profile", profileHandler.Get)
				authed.PUT("/profile", profileHandler.Update)

				skillHandler := admin.NewSkillHandler(app)
				authed.GET("/skills", skillHandler.List)
				authed.POST("/skills", skillHandler.Create)
				authed.PUT("/skills/:id", skillHandler.Update)
				authed.DELETE("/skills/:id", skillHandler.Delete)

				projectHandler := admin.NewProjectHandler(app)
				authed.GET("/projects", projectHandler.List)
				authed.GET("/projects/:id", projectHandler.Get)
				authed.POST("/projects", projectHandler.Create)
				authed.PUT("/projects/:id", projectHandler.Update)
				authed.DELETE("/projects/:id", projectHandler.Delete)

				caseStudyHandler := admin.NewCaseStudyHandler(app)
				authed.GET("/case-studies", caseStudyHandler.List)
				authed.GET("/case-studies/:id", caseStudyHandler.Get)
				authed.POST("/case-studies", caseStudyHandler.Create)
				authed.PUT("/case-studies/:id", caseStudyHandler.Update)
				authed.DELETE("/case-studies/:id", caseStudyHandler.Delete)

				experienceHandler := admin.NewExperienceHandler(app)
				authed.GET("/experience", experienceHandler.List)
				authed.POST("/experience", experienceHandler.Create)
				authed.PUT("/experience/:id", experienceHandler.Update)
				authed.DELETE("/experience/:id", experienceHandler.Delete)

				adminBlogHandler := admin.NewBlogHandler(app)
				authed.GET("/blog", adminBlogHandler.List)
				authed.GET("/blog/:id", adminBlogHandler.Get)
				authed.POST("/blog", adminBlogHandler.Create)
				authed.PUT("/blog/:id", adminBlogHandler.Update)
				authed.DELETE("/blog/:id", adminBlogHandler.Delete)

				adminContactHandler := admin.NewContactHandler(app)
				authed.GET("/contacts", adminContactHandler.List)
				authed.GET("/contacts/:id", adminContactHandler.Get)
				authed.PATCH("/contacts/:id/status", adminContactHandler.UpdateStatus)
				authed.DELETE("/contacts/:id", adminContactHandler.Delete)

				dashboardHandler := admin.NewDashboardHandler(app)
				authed.GET("/dashboard", dashboardHandler.Summary)
				authed.GET("/analytics", dashboardHandler.Analytics)
				authed.POST("/cache/clear", dashboardHandler.ClearCache)
			}
		}
	}

	/* 管理后台页面（门卫拦截 + 静态文件服务，仅在资源目录存在时启用） */
	SetupFrontend(router, app)

	return router
}

/*
localOnlyGuard 本地访问限制中间件
功能：仅允许 127.0.0.1 / ::1 访问，用于保护 /metrics 等运维端点。
生产环境应额外通过反向代理限制访问。
*/
func localOnlyGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip != "127.0.0.1" && ip != "::1" {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
