package dao

import (
	"context"

	"devfolio/internal/db/models"
)

/* ==================== 仪表盘统计 ==================== */

/* CountSkills 技能总数 */
func (d *DAO) CountSkills(ctx context.Context) (int64, error) {
	var count int64
	err := d.ctxDB(ctx).Model(&models.Skill{}).Count(&count).Error
	return count, err
}

/* CountProjects 项目总数 */
func (d *DAO) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := d.ctxDB(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}

/* CountCaseStudies 案例分析总数 */
func (d *DAO) CountCaseStudies(ctx context.Context) (int64, error) {
	var count int64
	err := d.ctxDB(ctx).Model(&models.CaseStudy{}).Count(&count).Error
	return count, err
}

/* CountPosts 文章总数（published 过滤可选） */
func (d *DAO) CountPosts(ctx context.Context, publishedOnly bool) (int64, error) {
	var count int64
	q := d.ctxDB(ctx).Model(&models.BlogPost{})
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	err := q.Count(&count).Error
	return count, err
}

/* CountExperiences 工作经历总数 */
func (d *DAO) CountExperiences(ctx context.Context) (int64, error) {
	var count int64
	err := d.ctxDB(ctx).Model(&models.Experience{}).Count(&count).Error
	return count, err
}
