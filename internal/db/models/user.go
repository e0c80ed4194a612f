package models

import (
	"time"
)

/*
UserRole 用户角色枚举
*/
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

/*
User 用户模型
功能：存储管理后台账户的认证凭据和状态。
系统只使用单一管理员身份，模型保留角色字段以便端点守卫统一校验。
*/
type User struct {
	BaseModel
	Username  string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(256);not null" json:"-"`
	Role      UserRole  `gorm:"type:varchar(16);default:'user';not null" json:"role"`
	/* 不设列默认值：带 default 标签的布尔零值在 INSERT 时被省略，
	   Enabled=false 会落库为 true；创建方必须显式赋值 */
	Enabled   bool      `gorm:"not null" json:"enabled"`
	LastLogin time.Time `gorm:"" json:"last_login"`
}

func (User) TableName() string {
	return "users"
}
