package dao

import (
	"context"

	"devfolio/internal/db/models"

	"gorm.io/gorm"
)

/* ==================== 博客文章 ==================== */

/*
ListPublishedPosts 分页列出已发布文章（公开端），可按标签过滤
*/
func (d *DAO) ListPublishedPosts(ctx context.Context, page, limit int, tag string) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	q := d.ctxDB(ctx).Model(&models.BlogPost{}).Where("published = ?", true)
	if tag != "" {
		q = q.Where("tags LIKE ?", "%"+tag+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := q.Order("published_at DESC").
		Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

/*
ListPostsPaged 分页列出全部文章（管理端，含未发布）
*/
func (d *DAO) ListPostsPaged(ctx context.Context, page, limit int) ([]models.BlogPost, int64, error) {
	var posts []models.BlogPost
	var total int64

	if err := d.ctxDB(ctx).Model(&models.BlogPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := d.ctxDB(ctx).Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

/*
GetPost 根据ID获取文章
*/
func (d *DAO) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := d.ctxDB(ctx).First(&post, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

/*
GetPublishedPostBySlug 根据 slug 获取已发布文章
*/
func (d *DAO) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := d.ctxDB(ctx).Where("slug = ? AND published = ?", slug, true).
		First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

/*
CreatePost 创建文章
*/
func (d *DAO) CreatePost(ctx context.Context, post *models.BlogPost) error {
	return d.ctxDB(ctx).Create(post).Error
}

/*
UpdatePost 更新文章
*/
func (d *DAO) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	return d.ctxDB(ctx).Save(post).Error
}

/*
DeletePost 删除文章（软删除）
*/
func (d *DAO) DeletePost(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Delete(&models.BlogPost{}, "id = ?", id).Error
}

/*
IncrementPostViews 文章阅读数 +1
功能：原子自增，避免读改写竞态
*/
func (d *DAO) IncrementPostViews(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Model(&models.BlogPost{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
