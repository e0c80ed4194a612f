package admin

import (
	"strconv"

	"devfolio/internal/api/response"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

/*
DashboardHandler 仪表盘与访问统计处理器
*/
type DashboardHandler struct {
	app    *types.App
	logger *zap.Logger
}

func NewDashboardHandler(app *types.App) *DashboardHandler {
	return &DashboardHandler{
		app:    app,
		logger: zap.L().Named("admin-dashboard-handler"),
	}
}

/*
Summary 仪表盘汇总
功能：各实体数量、未读消息数、近 30 天访问量
路由：GET /api/v1/admin/dashboard
*/
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.app.Content.GetDashboardSummary(c.Request.Context())
	if err != nil {
		h.logger.Error("聚合仪表盘数据失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, summary)
}

/*
Analytics 时间段访问统计
路由：GET /api/v1/admin/analytics?days=30&top=10
*/
func (h *DashboardHandler) Analytics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	topN, _ := strconv.Atoi(c.DefaultQuery("top", "10"))
	if days < 0 || days > 365 {
		response.BadRequest(c, "days 取值范围 1-365")
		return
	}

	summary, err := h.app.Content.GetAnalyticsSummary(c.Request.Context(), days, topN)
	if err != nil {
		h.logger.Error("聚合访问统计失败", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, summary)
}

/*
ClearCache 清空内容缓存
功能：运维入口，内容外部变更（直接改库）后手动刷新
路由：POST /api/v1/admin/cache/clear
*/
func (h *DashboardHandler) ClearCache(c *gin.Context) {
	before := h.app.Cache.Len()
	h.app.Cache.Clear()
	h.logger.Info("已清空内容缓存", zap.Int("entries", before))
	response.OK(c, gin.H{"cleared": before})
}
