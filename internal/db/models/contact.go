package models

import (
	"time"
)

/*
ContactStatus 联系消息处理状态枚举
*/
type ContactStatus string

const (
	ContactNew       ContactStatus = "NEW"
	ContactRead      ContactStatus = "READ"
	ContactResponded ContactStatus = "RESPONDED"
	ContactArchived  ContactStatus = "ARCHIVED"
)

/* ValidContactStatus 校验状态值是否为已定义的枚举 */
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactNew, ContactRead, ContactResponded, ContactArchived:
		return true
	}
	return false
}

/*
ContactMessage 联系表单提交
功能：记录公开站点的联系表单提交及管理端的处理状态。
状态流转到 RESPONDED 时由服务层写入 RespondedAt。
*/
type ContactMessage struct {
	BaseModel
	Name        string        `gorm:"type:varchar(64);not null" json:"name"`
	Email       string        `gorm:"type:varchar(128);not null" json:"email"`
	Subject     string        `gorm:"type:varchar(128)" json:"subject"`
	Body        string        `gorm:"type:text;not null" json:"body"`
	Status      ContactStatus `gorm:"type:varchar(16);default:'NEW';not null;index" json:"status"`
	RespondedAt *time.Time    `gorm:"" json:"responded_at"`
	ClientIP    string        `gorm:"type:varchar(64)" json:"-"` /* 仅用于滥用排查，不对外输出 */
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
