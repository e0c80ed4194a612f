package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"devfolio/internal/config"
	"devfolio/internal/db/dao"
	"devfolio/internal/db/models"

	"go.uber.org/zap"
)

/*
AnalyticsService 页面访问统计服务
功能：接收公开站点的访问上报并落库。不存储原始 IP 和 UA，
仅保留加盐哈希后的访客指纹；指纹按天变化，无法跨天追踪个体。
*/
type AnalyticsService struct {
	dao     *dao.DAO
	salt    string
	enabled bool
	logger  *zap.Logger
}

/*
NewAnalyticsService 创建访问统计服务
salt 为空时使用固定占位盐，仍可统计但指纹可被离线碰撞，初始化流程应生成随机盐
*/
func NewAnalyticsService(d *dao.DAO, cfg *config.AnalyticsConfig) *AnalyticsService {
	salt := cfg.VisitorSalt
	if salt == "" {
		salt = "devfolio-default-salt"
	}
	return &AnalyticsService{
		dao:     d,
		salt:    salt,
		enabled: cfg.Enabled,
		logger:  zap.L().Named("analytics-service"),
	}
}

/* Enabled 是否记录页面访问 */
func (s *AnalyticsService) Enabled() bool {
	return s.enabled
}

/*
RecordPageView 记录一次页面访问
功能：路径规范化 → 访客指纹计算 → 落库。
统计是尽力而为的旁路操作，失败只记日志不影响请求。
*/
func (s *AnalyticsService) RecordPageView(ctx context.Context, path, referrer, clientIP, userAgent string) error {
	if !s.enabled {
		return nil
	}

	path = normalizePath(path)
	if path == "" {
		return fmt.Errorf("无效的页面路径")
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	view := &models.PageView{
		Path:        path,
		Referrer:    truncate(referrer, 256),
		VisitorHash: s.visitorHash(clientIP, userAgent, day),
		Day:         day,
	}
	if err := s.dao.CreatePageView(ctx, view); err != nil {
		return fmt.Errorf("记录页面访问失败: %w", err)
	}
	return nil
}

/*
visitorHash 计算按天变化的访客指纹
sha256(salt | ip | ua | day)，取十六进制。同一访客当天去重，跨天不可关联。
*/
func (s *AnalyticsService) visitorHash(clientIP, userAgent string, day time.Time) string {
	h := sha256.New()
	h.Write([]byte(s.salt))
	h.Write([]byte{0})
	h.Write([]byte(clientIP))
	h.Write([]byte{0})
	h.Write([]byte(userAgent))
	h.Write([]byte{0})
	h.Write([]byte(day.Format("2006-01-02")))
	return hex.EncodeToString(h.Sum(nil))
}

/* normalizePath 页面路径规范化：去查询串、限长、保证以 / 开头 */
func normalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "/") {
		return ""
	}
	return truncate(path, 256)
}

/* truncate 字符串限长 */
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
