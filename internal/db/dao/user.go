package dao

import (
	"context"
	"time"

	"devfolio/internal/db/models"

	"gorm.io/gorm"
)

/* ==================== 用户 ==================== */

/*
GetUser 根据ID获取用户
*/
func (d *DAO) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := d.ctxDB(ctx).First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

/*
GetUserByUsername 根据用户名获取用户
*/
func (d *DAO) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := d.ctxDB(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

/*
CreateUser 创建用户
*/
func (d *DAO) CreateUser(ctx context.Context, user *models.User) error {
	return d.ctxDB(ctx).Create(user).Error
}

/*
UpdateUserLastLogin 更新最后登录时间
*/
func (d *DAO) UpdateUserLastLogin(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Model(&models.User{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}
