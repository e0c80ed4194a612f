package dao

import (
	"context"
	"time"

	"devfolio/internal/db/models"

	"gorm.io/gorm"
)

/* ==================== 联系消息 ==================== */

/*
CreateContactMessage 创建联系消息（公开表单提交）
*/
func (d *DAO) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return d.ctxDB(ctx).Create(msg).Error
}

/*
ListContactMessages 分页列出联系消息，可按状态过滤
*/
func (d *DAO) ListContactMessages(ctx context.Context, page, limit int, status models.ContactStatus) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	q := d.ctxDB(ctx).Model(&models.ContactMessage{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

/*
GetContactMessage 根据ID获取联系消息
*/
func (d *DAO) GetContactMessage(ctx context.Context, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := d.ctxDB(ctx).First(&msg, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &msg, nil
}

/*
UpdateContactStatus 更新联系消息处理状态
功能：流转到 RESPONDED 时同时写入响应时间戳
*/
func (d *DAO) UpdateContactStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	msg, err := d.GetContactMessage(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, nil
	}

	msg.Status = status
	if status == models.ContactResponded && msg.RespondedAt == nil {
		now := time.Now()
		msg.RespondedAt = &now
	}

	if err := d.ctxDB(ctx).Save(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

/*
DeleteContactMessage 删除联系消息（软删除）
*/
func (d *DAO) DeleteContactMessage(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Delete(&models.ContactMessage{}, "id = ?", id).Error
}

/*
CountContactsByStatus 按状态统计联系消息数
*/
func (d *DAO) CountContactsByStatus(ctx context.Context, status models.ContactStatus) (int64, error) {
	var count int64
	err := d.ctxDB(ctx).Model(&models.ContactMessage{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}
