package dao

import (
	"context"

	"devfolio/internal/db/models"

	"gorm.io/gorm"
)

/* ==================== 个人资料 ==================== */

/*
GetProfile 获取个人资料
功能：全站仅一条记录，取最早创建的一条
*/
func (d *DAO) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := d.ctxDB(ctx).Order("created_at ASC").First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

/*
UpsertProfile 创建或更新个人资料
功能：无记录时创建，有记录时整体覆盖
*/
func (d *DAO) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	existing, err := d.GetProfile(ctx)
	if err != nil {
		return err
	}
	if existing == nil {
		return d.ctxDB(ctx).Create(profile).Error
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return d.ctxDB(ctx).Save(profile).Error
}

/* ==================== 技能 ==================== */

/*
ListSkills 列出全部技能（按分类和排序字段）
*/
func (d *DAO) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	if err := d.ctxDB(ctx).Order("category ASC, sort_order ASC, name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

/*
ListSkillsPaged 分页列出技能（管理端）
*/
func (d *DAO) ListSkillsPaged(ctx context.Context, page, limit int) ([]models.Skill, int64, error) {
	var skills []models.Skill
	var total int64

	if err := d.ctxDB(ctx).Model(&models.Skill{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := d.ctxDB(ctx).Order("category ASC, sort_order ASC").
		Offset(offset).Limit(limit).Find(&skills).Error; err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

/*
GetSkill 根据ID获取技能
*/
func (d *DAO) GetSkill(ctx context.Context, id string) (*models.Skill, error) {
	var skill models.Skill
	if err := d.ctxDB(ctx).First(&skill, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &skill, nil
}

/*
CreateSkill 创建技能
*/
func (d *DAO) CreateSkill(ctx context.Context, skill *models.Skill) error {
	return d.ctxDB(ctx).Create(skill).Error
}

/*
UpdateSkill 更新技能
*/
func (d *DAO) UpdateSkill(ctx context.Context, skill *models.Skill) error {
	return d.ctxDB(ctx).Save(skill).Error
}

/*
DeleteSkill 删除技能（软删除）
*/
func (d *DAO) DeleteSkill(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Delete(&models.Skill{}, "id = ?", id).Error
}

/* ==================== 项目 ==================== */

/*
ListProjects 列出全部项目（公开端，featured 优先）
*/
func (d *DAO) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := d.ctxDB(ctx).Order("featured DESC, sort_order ASC, created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

/*
ListProjectsPaged 分页列出项目（管理端）
*/
func (d *DAO) ListProjectsPaged(ctx context.Context, page, limit int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := d.ctxDB(ctx).Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := d.ctxDB(ctx).Order("sort_order ASC, created_at DESC").
		Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

/*
GetProject 根据ID获取项目
*/
func (d *DAO) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := d.ctxDB(ctx).First(&project, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

/*
GetProjectBySlug 根据 slug 获取项目（含案例分析）
*/
func (d *DAO) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := d.ctxDB(ctx).Preload("CaseStudies", "published = ?", true).
		Where("slug = ?", slug).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

/*
CreateProject 创建项目
*/
func (d *DAO) CreateProject(ctx context.Context, project *models.Project) error {
	return d.ctxDB(ctx).Create(project).Error
}

/*
UpdateProject 更新项目
*/
func (d *DAO) UpdateProject(ctx context.Context, project *models.Project) error {
	return d.ctxDB(ctx).Save(project).Error
}

/*
DeleteProject 删除项目（软删除）
*/
func (d *DAO) DeleteProject(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Delete(&models.Project{}, "id = ?", id).Error
}

/* ==================== 案例分析 ==================== */

/*
ListCaseStudies 列出案例分析
功能：publishedOnly 为 true 时仅返回已发布条目（公开端）
*/
func (d *DAO) ListCaseStudies(ctx context.Context, publishedOnly bool) ([]models.CaseStudy, error) {
	var studies []models.CaseStudy
	q := d.ctxDB(ctx).Order("created_at DESC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	if err := q.Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

/*
ListCaseStudiesPaged 分页列出案例分析（管理端）
*/
func (d *DAO) ListCaseStudiesPaged(ctx context.Context, page, limit int) ([]models.CaseStudy, int64, error) {
	var studies []models.CaseStudy
	var total int64

	if err := d.ctxDB(ctx).Model(&models.CaseStudy{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := d.ctxDB(ctx).Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&studies).Error; err != nil {
		return nil, 0, err
	}
	return studies, total, nil
}

/*
GetCaseStudy 根据ID获取案例分析
*/
func (d *DAO) GetCaseStudy(ctx context.Context, id string) (*models.CaseStudy, error) {
	var study models.CaseStudy
	if err := d.ctxDB(ctx).First(&study, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &study, nil
}

/*
GetCaseStudyBySlug 根据 slug 获取已发布的案例分析（含项目）
*/
func (d *DAO) GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	var study models.CaseStudy
	if err := d.ctxDB(ctx).Preload("Project").
		Where("slug = ? AND published = ?", slug, true).First(&study).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &study, nil
}

/*
CreateCaseStudy 创建案例分析
*/
func (d *DAO) CreateCaseStudy(ctx context.Context, study *models.CaseStudy) error {
	return d.ctxDB(ctx).Create(study).Error
}

/*
UpdateCaseStudy 更新案例分析
*/
func (d *DAO) UpdateCaseStudy(ctx context.Context, study *models.CaseStudy) error {
	return d.ctxDB(ctx).Save(study).Error
}

/*
DeleteCaseStudy 删除案例分析（软删除）
*/
func (d *DAO) DeleteCaseStudy(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Delete(&models.CaseStudy{}, "id = ?", id).Error
}

/* ==================== 工作经历 ==================== */

/*
ListExperiences 列出工作经历（时间倒序，在职优先）
*/
func (d *DAO) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := d.ctxDB(ctx).Order("current DESC, start_at DESC").
		Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

/*
GetExperience 根据ID获取工作经历
*/
func (d *DAO) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	var exp models.Experience
	if err := d.ctxDB(ctx).First(&exp, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &exp, nil
}

/*
CreateExperience 创建工作经历
*/
func (d *DAO) CreateExperience(ctx context.Context, exp *models.Experience) error {
	return d.ctxDB(ctx).Create(exp).Error
}

/*
UpdateExperience 更新工作经历
*/
func (d *DAO) UpdateExperience(ctx context.Context, exp *models.Experience) error {
	return d.ctxDB(ctx).Save(exp).Error
}

/*
DeleteExperience 删除工作经历（软删除）
*/
func (d *DAO) DeleteExperience(ctx context.Context, id string) error {
	return d.ctxDB(ctx).Delete(&models.Experience{}, "id = ?", id).Error
}
