package models

import (
	"time"
)

/*
Profile 个人资料
功能：站点首页展示的开发者简介，全站仅一条记录。
Bio 存储 Markdown 源文，渲染由前端完成。
*/
type Profile struct {
	BaseModel
	Name      string `gorm:"type:varchar(64);not null" json:"name"`
	Headline  string `gorm:"type:varchar(128)" json:"headline"`
	Bio       string `gorm:"type:text" json:"bio"`
	Location  string `gorm:"type:varchar(64)" json:"location"`
	Email     string `gorm:"type:varchar(128)" json:"email"`
	GitHubURL string `gorm:"type:varchar(256)" json:"github_url"`
	LinkedIn  string `gorm:"type:varchar(256)" json:"linkedin_url"`
	Resume    string `gorm:"type:varchar(256)" json:"resume_url"`
}

func (Profile) TableName() string {
	return "profiles"
}

/*
Skill 技能条目
功能：按分类展示的技能及熟练度（0-100）
*/
type Skill struct {
	BaseModel
	Name      string `gorm:"type:varchar(64);not null" json:"name"`
	Category  string `gorm:"type:varchar(32);index;not null" json:"category"` /* language/framework/tool/... */
	Level     int    `gorm:"default:0" json:"level"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

func (Skill) TableName() string {
	return "skills"
}

/*
Project 项目作品
功能：作品集项目条目，含技术栈和外部链接
*/
type Project struct {
	BaseModel
	Title       string `gorm:"type:varchar(128);not null" json:"title"`
	Slug        string `gorm:"type:varchar(128);uniqueIndex;not null" json:"slug"`
	Summary     string `gorm:"type:varchar(512)" json:"summary"`
	Description string `gorm:"type:text" json:"description"`
	TechStack   string `gorm:"type:varchar(512)" json:"tech_stack"` /* 逗号分隔的技术列表 */
	RepoURL     string `gorm:"type:varchar(256)" json:"repo_url"`
	LiveURL     string `gorm:"type:varchar(256)" json:"live_url"`
	CoverImage  string `gorm:"type:varchar(256)" json:"cover_image"`
	Featured    bool   `gorm:"default:false;index" json:"featured"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	/* 关联 */
	CaseStudies []CaseStudy `gorm:"foreignKey:ProjectID" json:"case_studies,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

/*
CaseStudy 案例分析
功能：针对单个项目的问题/方案/结果三段式深度拆解
*/
type CaseStudy struct {
	BaseModel
	Title     string `gorm:"type:varchar(128);not null" json:"title"`
	Slug      string `gorm:"type:varchar(128);uniqueIndex;not null" json:"slug"`
	ProjectID string `gorm:"type:varchar(36);index" json:"project_id"`
	Problem   string `gorm:"type:text" json:"problem"`
	Approach  string `gorm:"type:text" json:"approach"`
	Outcome   string `gorm:"type:text" json:"outcome"`
	Published bool   `gorm:"default:false;index" json:"published"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

/*
Experience 工作经历
功能：时间线展示的任职记录，Current 为 true 时 EndAt 为空
*/
type Experience struct {
	BaseModel
	Role       string     `gorm:"type:varchar(128);not null" json:"role"`
	Company    string     `gorm:"type:varchar(128);not null" json:"company"`
	Location   string     `gorm:"type:varchar(64)" json:"location"`
	StartAt    time.Time  `gorm:"not null;index" json:"start_at"`
	EndAt      *time.Time `gorm:"" json:"end_at"`
	Current    bool       `gorm:"default:false" json:"current"`
	Highlights string     `gorm:"type:text" json:"highlights"` /* 换行分隔的要点列表 */
}

func (Experience) TableName() string {
	return "experiences"
}

/*
BlogPost 博客文章
功能：Markdown 博文，未发布的文章仅管理端可见
*/
type BlogPost struct {
	BaseModel
	Title       string     `gorm:"type:varchar(128);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(128);uniqueIndex;not null" json:"slug"`
	Excerpt     string     `gorm:"type:varchar(512)" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Tags        string     `gorm:"type:varchar(256);index" json:"tags"` /* 逗号分隔 */
	Published   bool       `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time `gorm:"index" json:"published_at"`
	ViewCount   int64      `gorm:"default:0" json:"view_count"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
