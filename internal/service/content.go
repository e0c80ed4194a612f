package service

import (
	"context"
	"fmt"
	"time"

	"devfolio/internal/cache"
	"devfolio/internal/db/dao"
	"devfolio/internal/db/models"

	"go.uber.org/zap"
)

/* 缓存键实体名，见 cache 包的键命名约定 */
const (
	entityProfile    = "profile"
	entitySkill      = "skill"
	entityProject    = "project"
	entityCaseStudy  = "casestudy"
	entityExperience = "experience"
	entityBlog       = "blog"
	entityContact    = "contact"
	entityDashboard  = "dashboard"
	entityAnalytics  = "analytics"
)

/*
ContentService 内容服务
功能：站点内容的读写入口。读路径经过内存缓存（读穿透：
未命中回源查库并写缓存），写路径落库后按实体批量失效缓存，
保证后续读取观察到新数据。
*/
type ContentService struct {
	dao    *dao.DAO
	cache  *cache.Store
	logger *zap.Logger
}

/*
NewContentService 创建内容服务
*/
func NewContentService(d *dao.DAO, store *cache.Store) *ContentService {
	return &ContentService{
		dao:    d,
		cache:  store,
		logger: zap.L().Named("content-service"),
	}
}

/* Cache 暴露底层缓存（订阅与运维接口使用） */
func (s *ContentService) Cache() *cache.Store {
	return s.cache
}

/*
cacheThrough 读穿透辅助
功能：按键查缓存，未命中时回源加载并写入缓存。
回源失败时不污染缓存，错误原样上抛。
*/
func cacheThrough[T any](s *ContentService, key string, load func() (T, error)) (T, error) {
	if v, ok := s.cache.Get(key, 0); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
		/* 类型不符说明键被别的载荷占用，视为未命中并覆盖 */
		s.logger.Warn("缓存载荷类型不匹配", zap.String("key", key))
	}

	value, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	s.cache.Set(key, value)
	return value, nil
}

/* ==================== 个人资料 ==================== */

func (s *ContentService) GetProfile(ctx context.Context) (*models.Profile, error) {
	key := cache.Key(entityProfile, "item", "singleton")
	return cacheThrough(s, key, func() (*models.Profile, error) {
		return s.dao.GetProfile(ctx)
	})
}

func (s *ContentService) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	if err := s.dao.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("保存个人资料失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityProfile))
	return nil
}

/* ==================== 技能 ==================== */

func (s *ContentService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	key := cache.Key(entitySkill, "list", "all")
	return cacheThrough(s, key, func() ([]models.Skill, error) {
		return s.dao.ListSkills(ctx)
	})
}

/* pagedResult 分页查询的缓存载荷 */
type pagedResult[T any] struct {
	Items []T
	Total int64
}

func (s *ContentService) ListSkillsPaged(ctx context.Context, page, limit int) ([]models.Skill, int64, error) {
	key := cache.Key(entitySkill, "list", map[string]int{"page": page, "limit": limit})
	r, err := cacheThrough(s, key, func() (pagedResult[models.Skill], error) {
		items, total, err := s.dao.ListSkillsPaged(ctx, page, limit)
		return pagedResult[models.Skill]{Items: items, Total: total}, err
	})
	return r.Items, r.Total, err
}

func (s *ContentService) GetSkill(ctx context.Context, id string) (*models.Skill, error) {
	return s.dao.GetSkill(ctx, id)
}

func (s *ContentService) CreateSkill(ctx context.Context, skill *models.Skill) error {
	if err := s.dao.CreateSkill(ctx, skill); err != nil {
		return fmt.Errorf("创建技能失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entitySkill))
	s.invalidateDashboard()
	return nil
}

func (s *ContentService) UpdateSkill(ctx context.Context, skill *models.Skill) error {
	if err := s.dao.UpdateSkill(ctx, skill); err != nil {
		return fmt.Errorf("更新技能失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entitySkill))
	return nil
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	if err := s.dao.DeleteSkill(ctx, id); err != nil {
		return fmt.Errorf("删除技能失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entitySkill))
	s.invalidateDashboard()
	return nil
}

/* ==================== 项目 ==================== */

func (s *ContentService) ListProjects(ctx context.Context) ([]models.Project, error) {
	key := cache.Key(entityProject, "list", "all")
	return cacheThrough(s, key, func() ([]models.Project, error) {
		return s.dao.ListProjects(ctx)
	})
}

func (s *ContentService) ListProjectsPaged(ctx context.Context, page, limit int) ([]models.Project, int64, error) {
	key := cache.Key(entityProject, "list", map[string]int{"page": page, "limit": limit})
	r, err := cacheThrough(s, key, func() (pagedResult[models.Project], error) {
		items, total, err := s.dao.ListProjectsPaged(ctx, page, limit)
		return pagedResult[models.Project]{Items: items, Total: total}, err
	})
	return r.Items, r.Total, err
}

func (s *ContentService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.dao.GetProject(ctx, id)
}

func (s *ContentService) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	key := cache.Key(entityProject, "item", slug)
	return cacheThrough(s, key, func() (*models.Project, error) {
		return s.dao.GetProjectBySlug(ctx, slug)
	})
}

func (s *ContentService) CreateProject(ctx context.Context, project *models.Project) error {
	if err := s.dao.CreateProject(ctx, project); err != nil {
		return fmt.Errorf("创建项目失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityProject))
	s.invalidateDashboard()
	return nil
}

func (s *ContentService) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := s.dao.UpdateProject(ctx, project); err != nil {
		return fmt.Errorf("更新项目失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityProject))
	return nil
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	if err := s.dao.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("删除项目失败: %w", err)
	}
	/* 案例分析挂在项目下，一并失效 */
	s.cache.InvalidatePattern(cache.EntityPattern(entityProject))
	s.cache.InvalidatePattern(cache.EntityPattern(entityCaseStudy))
	s.invalidateDashboard()
	return nil
}

/* ==================== 案例分析 ==================== */

func (s *ContentService) ListCaseStudies(ctx context.Context, publishedOnly bool) ([]models.CaseStudy, error) {
	key := cache.Key(entityCaseStudy, "list", map[string]bool{"published": publishedOnly})
	return cacheThrough(s, key, func() ([]models.CaseStudy, error) {
		return s.dao.ListCaseStudies(ctx, publishedOnly)
	})
}

func (s *ContentService) ListCaseStudiesPaged(ctx context.Context, page, limit int) ([]models.CaseStudy, int64, error) {
	key := cache.Key(entityCaseStudy, "list", map[string]int{"page": page, "limit": limit})
	r, err := cacheThrough(s, key, func() (pagedResult[models.CaseStudy], error) {
		items, total, err := s.dao.ListCaseStudiesPaged(ctx, page, limit)
		return pagedResult[models.CaseStudy]{Items: items, Total: total}, err
	})
	return r.Items, r.Total, err
}

func (s *ContentService) GetCaseStudy(ctx context.Context, id string) (*models.CaseStudy, error) {
	return s.dao.GetCaseStudy(ctx, id)
}

func (s *ContentService) GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	key := cache.Key(entityCaseStudy, "item", slug)
	return cacheThrough(s, key, func() (*models.CaseStudy, error) {
		return s.dao.GetCaseStudyBySlug(ctx, slug)
	})
}

func (s *ContentService) CreateCaseStudy(ctx context.Context, study *models.CaseStudy) error {
	if err := s.dao.CreateCaseStudy(ctx, study); err != nil {
		return fmt.Errorf("创建案例分析失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityCaseStudy))
	s.cache.InvalidatePattern(cache.EntityPattern(entityProject))
	s.invalidateDashboard()
	return nil
}

func (s *ContentService) UpdateCaseStudy(ctx context.Context, study *models.CaseStudy) error {
	if err := s.dao.UpdateCaseStudy(ctx, study); err != nil {
		return fmt.Errorf("更新案例分析失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityCaseStudy))
	s.cache.InvalidatePattern(cache.EntityPattern(entityProject))
	return nil
}

func (s *ContentService) DeleteCaseStudy(ctx context.Context, id string) error {
	if err := s.dao.DeleteCaseStudy(ctx, id); err != nil {
		return fmt.Errorf("删除案例分析失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityCaseStudy))
	s.cache.InvalidatePattern(cache.EntityPattern(entityProject))
	s.invalidateDashboard()
	return nil
}

/* ==================== 工作经历 ==================== */

func (s *ContentService) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	key := cache.Key(entityExperience, "list", "all")
	return cacheThrough(s, key, func() ([]models.Experience, error) {
		return s.dao.ListExperiences(ctx)
	})
}

func (s *ContentService) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	return s.dao.GetExperience(ctx, id)
}

func (s *ContentService) CreateExperience(ctx context.Context, exp *models.Experience) error {
	if err := s.dao.CreateExperience(ctx, exp); err != nil {
		return fmt.Errorf("创建工作经历失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityExperience))
	return nil
}

func (s *ContentService) UpdateExperience(ctx context.Context, exp *models.Experience) error {
	if err := s.dao.UpdateExperience(ctx, exp); err != nil {
		return fmt.Errorf("更新工作经历失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityExperience))
	return nil
}

func (s *ContentService) DeleteExperience(ctx context.Context, id string) error {
	if err := s.dao.DeleteExperience(ctx, id); err != nil {
		return fmt.Errorf("删除工作经历失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityExperience))
	return nil
}

/* ==================== 博客 ==================== */

func (s *ContentService) ListPublishedPosts(ctx context.Context, page, limit int, tag string) ([]models.BlogPost, int64, error) {
	key := cache.Key(entityBlog, "list", map[string]interface{}{"page": page, "limit": limit, "tag": tag, "pub": true})
	r, err := cacheThrough(s, key, func() (pagedResult[models.BlogPost], error) {
		items, total, err := s.dao.ListPublishedPosts(ctx, page, limit, tag)
		return pagedResult[models.BlogPost]{Items: items, Total: total}, err
	})
	return r.Items, r.Total, err
}

func (s *ContentService) ListPostsPaged(ctx context.Context, page, limit int) ([]models.BlogPost, int64, error) {
	key := cache.Key(entityBlog, "list", map[string]int{"page": page, "limit": limit})
	r, err := cacheThrough(s, key, func() (pagedResult[models.BlogPost], error) {
		items, total, err := s.dao.ListPostsPaged(ctx, page, limit)
		return pagedResult[models.BlogPost]{Items: items, Total: total}, err
	})
	return r.Items, r.Total, err
}

func (s *ContentService) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return s.dao.GetPost(ctx, id)
}

/*
GetPublishedPostBySlug 公开端按 slug 读取已发布文章
功能：命中即异步自增阅读数；阅读数允许短暂滞后，不触发缓存失效
*/
func (s *ContentService) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	key := cache.Key(entityBlog, "item", slug)
	post, err := cacheThrough(s, key, func() (*models.BlogPost, error) {
		return s.dao.GetPublishedPostBySlug(ctx, slug)
	})
	if err != nil || post == nil {
		return post, err
	}

	if err := s.dao.IncrementPostViews(ctx, post.ID); err != nil {
		s.logger.Warn("更新文章阅读数失败", zap.String("post_id", post.ID), zap.Error(err))
	}
	return post, nil
}

func (s *ContentService) CreatePost(ctx context.Context, post *models.BlogPost) error {
	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.dao.CreatePost(ctx, post); err != nil {
		return fmt.Errorf("创建文章失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityBlog))
	s.invalidateDashboard()
	return nil
}

func (s *ContentService) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.dao.UpdatePost(ctx, post); err != nil {
		return fmt.Errorf("更新文章失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityBlog))
	return nil
}

func (s *ContentService) DeletePost(ctx context.Context, id string) error {
	if err := s.dao.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("删除文章失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityBlog))
	s.invalidateDashboard()
	return nil
}

/* ==================== 联系消息 ==================== */

func (s *ContentService) SubmitContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.Status = models.ContactNew
	if err := s.dao.CreateContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("保存联系消息失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityContact))
	s.invalidateDashboard()
	return nil
}

func (s *ContentService) ListContactMessages(ctx context.Context, page, limit int, status models.ContactStatus) ([]models.ContactMessage, int64, error) {
	key := cache.Key(entityContact, "list", map[string]interface{}{"page": page, "limit": limit, "status": status})
	r, err := cacheThrough(s, key, func() (pagedResult[models.ContactMessage], error) {
		items, total, err := s.dao.ListContactMessages(ctx, page, limit, status)
		return pagedResult[models.ContactMessage]{Items: items, Total: total}, err
	})
	return r.Items, r.Total, err
}

func (s *ContentService) GetContactMessage(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.dao.GetContactMessage(ctx, id)
}

func (s *ContentService) UpdateContactStatus(ctx context.Context, id string, status models.ContactStatus) (*models.ContactMessage, error) {
	msg, err := s.dao.UpdateContactStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("更新联系消息状态失败: %w", err)
	}
	if msg != nil {
		s.cache.InvalidatePattern(cache.EntityPattern(entityContact))
		s.invalidateDashboard()
	}
	return msg, nil
}

func (s *ContentService) DeleteContactMessage(ctx context.Context, id string) error {
	if err := s.dao.DeleteContactMessage(ctx, id); err != nil {
		return fmt.Errorf("删除联系消息失败: %w", err)
	}
	s.cache.InvalidatePattern(cache.EntityPattern(entityContact))
	s.invalidateDashboard()
	return nil
}

/* ==================== 仪表盘与统计 ==================== */

/*
DashboardSummary 管理后台仪表盘汇总
*/
type DashboardSummary struct {
	Skills         int64 `json:"skills"`
	Projects       int64 `json:"projects"`
	CaseStudies    int64 `json:"case_studies"`
	Posts          int64 `json:"posts"`
	PublishedPosts int64 `json:"published_posts"`
	Experiences    int64 `json:"experiences"`
	NewContacts    int64 `json:"new_contacts"`
	Views30d       int64 `json:"views_30d"`
	Visitors30d    int64 `json:"visitors_30d"`

	/* 最近动态：最新 5 条留言，供仪表盘直接展示 */
	RecentContacts []models.ContactMessage `json:"recent_contacts"`
}

/*
GetDashboardSummary 聚合仪表盘数据（缓存短 TTL 内的汇总结果）
*/
func (s *ContentService) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	key := cache.Key(entityDashboard, "summary", "all")
	return cacheThrough(s, key, func() (*DashboardSummary, error) {
		summary := &DashboardSummary{}
		var err error

		if summary.Skills, err = s.dao.CountSkills(ctx); err != nil {
			return nil, fmt.Errorf("统计技能数失败: %w", err)
		}
		if summary.Projects, err = s.dao.CountProjects(ctx); err != nil {
			return nil, fmt.Errorf("统计项目数失败: %w", err)
		}
		if summary.CaseStudies, err = s.dao.CountCaseStudies(ctx); err != nil {
			return nil, fmt.Errorf("统计案例数失败: %w", err)
		}
		if summary.Posts, err = s.dao.CountPosts(ctx, false); err != nil {
			return nil, fmt.Errorf("统计文章数失败: %w", err)
		}
		if summary.PublishedPosts, err = s.dao.CountPosts(ctx, true); err != nil {
			return nil, fmt.Errorf("统计已发布文章数失败: %w", err)
		}
		if summary.Experiences, err = s.dao.CountExperiences(ctx); err != nil {
			return nil, fmt.Errorf("统计工作经历数失败: %w", err)
		}
		if summary.NewContacts, err = s.dao.CountContactsByStatus(ctx, models.ContactNew); err != nil {
			return nil, fmt.Errorf("统计未读消息数失败: %w", err)
		}
		if summary.RecentContacts, _, err = s.dao.ListContactMessages(ctx, 1, 5, ""); err != nil {
			return nil, fmt.Errorf("读取最近留言失败: %w", err)
		}

		from := time.Now().AddDate(0, 0, -30)
		if summary.Views30d, err = s.dao.CountPageViews(ctx, from, time.Time{}); err != nil {
			return nil, fmt.Errorf("统计访问量失败: %w", err)
		}
		if summary.Visitors30d, err = s.dao.CountUniqueVisitors(ctx, from, time.Time{}); err != nil {
			return nil, fmt.Errorf("统计独立访客失败: %w", err)
		}
		return summary, nil
	})
}

/*
AnalyticsSummary 指定时间段的访问统计
*/
type AnalyticsSummary struct {
	From     time.Time         `json:"from"`
	To       time.Time         `json:"to"`
	Views    int64             `json:"views"`
	Visitors int64             `json:"visitors"`
	TopPaths []models.PathStat `json:"top_paths"`
	ByDay    []models.DayStat  `json:"by_day"`
}

/*
GetAnalyticsSummary 聚合时间段访问统计
参数：days 统计最近多少天（<=0 取 30），topN 路径榜条目数
*/
func (s *ContentService) GetAnalyticsSummary(ctx context.Context, days, topN int) (*AnalyticsSummary, error) {
	if days <= 0 {
		days = 30
	}
	key := cache.Key(entityAnalytics, "summary", map[string]int{"days": days, "top": topN})
	return cacheThrough(s, key, func() (*AnalyticsSummary, error) {
		now := time.Now()
		from := now.AddDate(0, 0, -days)
		summary := &AnalyticsSummary{From: from, To: now}
		var err error

		if summary.Views, err = s.dao.CountPageViews(ctx, from, now); err != nil {
			return nil, fmt.Errorf("统计访问量失败: %w", err)
		}
		if summary.Visitors, err = s.dao.CountUniqueVisitors(ctx, from, now); err != nil {
			return nil, fmt.Errorf("统计独立访客失败: %w", err)
		}
		if summary.TopPaths, err = s.dao.TopPaths(ctx, from, topN); err != nil {
			return nil, fmt.Errorf("统计热门路径失败: %w", err)
		}
		if summary.ByDay, err = s.dao.ViewsByDay(ctx, from, now); err != nil {
			return nil, fmt.Errorf("统计访问时间序列失败: %w", err)
		}
		return summary, nil
	})
}

/* invalidateDashboard 内容变更后让仪表盘汇总过期 */
func (s *ContentService) invalidateDashboard() {
	s.cache.InvalidatePattern(cache.EntityPattern(entityDashboard))
}
