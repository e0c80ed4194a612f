package service

import (
	"context"
	"time"

	"devfolio/internal/db/dao"
	"devfolio/internal/pkg/logger"

	"go.uber.org/zap"
)

/*
CleanupService 清理服务（定时任务）
功能：按保留期策略定期删除过期的页面访问记录，控制统计表体积
*/
type CleanupService struct {
	dao           *dao.DAO
	retentionDays int
	stopChan      chan struct{}
}

/*
NewCleanupService 创建清理服务
retentionDays <= 0 表示永久保留，服务启动后空转
*/
func NewCleanupService(d *dao.DAO, retentionDays int) *CleanupService {
	return &CleanupService{
		dao:           d,
		retentionDays: retentionDays,
		stopChan:      make(chan struct{}),
	}
}

// Start 启动清理服务（阻塞，应在独立 goroutine 中运行）
func (s *CleanupService) Start() {
	s.runCleanup()
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runCleanup()
		case <-s.stopChan:
			return
		}
	}
}

// Stop 停止清理服务
func (s *CleanupService) Stop() {
	close(s.stopChan)
}

/* runCleanup 执行过期访问记录清理 */
func (s *CleanupService) runCleanup() {
	if s.retentionDays <= 0 {
		return
	}

	logger.Debug("执行访问记录清理任务")

	before := time.Now().AddDate(0, 0, -s.retentionDays)
	count, err := s.dao.DeleteOldPageViews(context.Background(), before)
	if err != nil {
		logger.Error("清理过期访问记录失败", zap.Error(err))
		return
	}
	if count > 0 {
		logger.Info("已清理过期访问记录",
			zap.Int64("count", count),
			zap.Time("before", before))
	}
}
