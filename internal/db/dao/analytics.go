package dao

import (
	"context"
	"time"

	"devfolio/internal/db/models"
)

/* ==================== 页面访问统计 ==================== */

/*
CreatePageView 记录一次页面访问
*/
func (d *DAO) CreatePageView(ctx context.Context, view *models.PageView) error {
	return d.ctxDB(ctx).Create(view).Error
}

/*
CountPageViews 统计时间段内的总访问量
*/
func (d *DAO) CountPageViews(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	q := d.ctxDB(ctx).Model(&models.PageView{})
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}
	err := q.Count(&count).Error
	return count, err
}

/*
CountUniqueVisitors 统计时间段内的独立访客数（按访客指纹去重）
*/
func (d *DAO) CountUniqueVisitors(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	q := d.ctxDB(ctx).Model(&models.PageView{})
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at <= ?", to)
	}
	err := q.Distinct("visitor_hash").Count(&count).Error
	return count, err
}

/*
TopPaths 按访问量排序的路径统计
*/
func (d *DAO) TopPaths(ctx context.Context, from time.Time, limit int) ([]models.PathStat, error) {
	if limit <= 0 {
		limit = 10
	}

	var stats []models.PathStat
	q := d.ctxDB(ctx).Model(&models.PageView{}).
		Select("path, COUNT(*) AS views, COUNT(DISTINCT visitor_hash) AS visitors").
		Group("path").
		Order("views DESC").
		Limit(limit)
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if err := q.Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

/*
ViewsByDay 按天聚合的访问时间序列
*/
func (d *DAO) ViewsByDay(ctx context.Context, from, to time.Time) ([]models.DayStat, error) {
	var stats []models.DayStat
	q := d.ctxDB(ctx).Model(&models.PageView{}).
		Select("day, COUNT(*) AS views, COUNT(DISTINCT visitor_hash) AS visitors").
		Group("day").
		Order("day ASC")
	if !from.IsZero() {
		q = q.Where("day >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("day <= ?", to)
	}
	if err := q.Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

/*
DeleteOldPageViews 删除过期访问记录
功能：由清理服务定期调用，执行保留期策略
*/
func (d *DAO) DeleteOldPageViews(ctx context.Context, before time.Time) (int64, error) {
	result := d.ctxDB(ctx).Unscoped().Where("created_at < ?", before).Delete(&models.PageView{})
	return result.RowsAffected, result.Error
}
