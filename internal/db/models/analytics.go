package models

import (
	"time"
)

/*
PageView 页面访问记录
功能：公开站点的轻量访问统计。不存储原始 IP 和 UA，
仅保留加盐哈希后的访客指纹，按天聚合统计独立访客。
*/
type PageView struct {
	BaseModel
	Path        string    `gorm:"type:varchar(256);index:idx_views_path_day;not null" json:"path"`
	Referrer    string    `gorm:"type:varchar(256)" json:"referrer"`
	VisitorHash string    `gorm:"type:varchar(64);index" json:"-"`
	Day         time.Time `gorm:"index:idx_views_path_day;not null" json:"day"` /* 访问日期（零点对齐） */
}

func (PageView) TableName() string {
	return "page_views"
}

/*
PathStat 按路径聚合的访问统计（查询结果 DTO，不建表）
*/
type PathStat struct {
	Path     string `json:"path"`
	Views    int64  `json:"views"`
	Visitors int64  `json:"visitors"`
}

/*
DayStat 按天聚合的访问统计（查询结果 DTO，不建表）
*/
type DayStat struct {
	Day      time.Time `json:"day"`
	Views    int64     `json:"views"`
	Visitors int64     `json:"visitors"`
}
