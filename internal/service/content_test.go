package service

import (
	"context"
	"testing"
	"time"

	"devfolio/internal/cache"
	"devfolio/internal/db/dao"
	"devfolio/internal/db/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

/*
setupTestDB 创建内存 SQLite 测试数据库
功能：每个测试用例独立的内存数据库，自动迁移表结构
*/
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("创建测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.CaseStudy{},
		&models.Experience{},
		&models.BlogPost{},
		&models.ContactMessage{},
		&models.PageView{},
	)
	if err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}
	return db
}

/* setupContentService 组装测试用内容服务 */
func setupContentService(t *testing.T) (*ContentService, *dao.DAO, *cache.Store) {
	t.Helper()
	d := dao.New(setupTestDB(t))
	store := cache.NewStore(100, 5*time.Minute)
	return NewContentService(d, store), d, store
}

/*
TestSkillCacheReadThrough 测试读穿透：首次回源，二次命中缓存
*/
func TestSkillCacheReadThrough(t *testing.T) {
	svc, d, store := setupContentService(t)
	ctx := context.Background()

	if err := svc.CreateSkill(ctx, &models.Skill{Name: "Go", Category: "language"}); err != nil {
		t.Fatalf("创建技能失败: %v", err)
	}

	first, err := svc.ListSkills(ctx)
	if err != nil || len(first) != 1 {
		t.Fatalf("首次读取失败: %v, %d 条", err, len(first))
	}

	/* 绕过服务层直接写库：缓存命中时不应看到该记录 */
	if err := d.CreateSkill(ctx, &models.Skill{Name: "Rust", Category: "language"}); err != nil {
		t.Fatalf("直写技能失败: %v", err)
	}
	second, err := svc.ListSkills(ctx)
	if err != nil {
		t.Fatalf("二次读取失败: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("二次读取应命中缓存返回旧结果, 实际 %d 条", len(second))
	}

	/* 经服务层变更后缓存批量失效，读取观察到全部记录 */
	if err := svc.CreateSkill(ctx, &models.Skill{Name: "Python", Category: "language"}); err != nil {
		t.Fatalf("创建技能失败: %v", err)
	}
	third, err := svc.ListSkills(ctx)
	if err != nil {
		t.Fatalf("三次读取失败: %v", err)
	}
	if len(third) != 3 {
		t.Errorf("失效后应回源读到 3 条, 实际 %d 条", len(third))
	}

	_ = store
}

/*
TestMutationInvalidatesOnlyOwnEntity 测试变更只失效本实体的缓存
*/
func TestMutationInvalidatesOnlyOwnEntity(t *testing.T) {
	svc, d, store := setupContentService(t)
	ctx := context.Background()

	if err := svc.CreateSkill(ctx, &models.Skill{Name: "Go", Category: "language"}); err != nil {
		t.Fatalf("创建技能失败: %v", err)
	}
	if _, err := svc.ListSkills(ctx); err != nil {
		t.Fatalf("预热技能缓存失败: %v", err)
	}
	if _, err := svc.ListExperiences(ctx); err != nil {
		t.Fatalf("预热经历缓存失败: %v", err)
	}

	/* 经历变更不应失效技能缓存 */
	if err := svc.CreateExperience(ctx, &models.Experience{
		Role: "Engineer", Company: "Acme", StartAt: time.Now(),
	}); err != nil {
		t.Fatalf("创建经历失败: %v", err)
	}

	if err := d.CreateSkill(ctx, &models.Skill{Name: "Rust", Category: "language"}); err != nil {
		t.Fatalf("直写技能失败: %v", err)
	}
	skills, err := svc.ListSkills(ctx)
	if err != nil {
		t.Fatalf("读取技能失败: %v", err)
	}
	if len(skills) != 1 {
		t.Errorf("技能缓存不应被经历变更失效, 实际 %d 条", len(skills))
	}

	_ = store
}

/*
TestContactStatusTransition 测试消息状态流转与响应时间戳
*/
func TestContactStatusTransition(t *testing.T) {
	svc, _, _ := setupContentService(t)
	ctx := context.Background()

	msg := &models.ContactMessage{
		Name:  "Visitor",
		Email: "visitor@example.com",
		Body:  "hello",
	}
	if err := svc.SubmitContactMessage(ctx, msg); err != nil {
		t.Fatalf("提交消息失败: %v", err)
	}
	if msg.Status != models.ContactNew {
		t.Errorf("新消息初始状态应为 NEW: %s", msg.Status)
	}

	updated, err := svc.UpdateContactStatus(ctx, msg.ID, models.ContactResponded)
	if err != nil {
		t.Fatalf("状态流转失败: %v", err)
	}
	if updated.Status != models.ContactResponded {
		t.Errorf("状态应为 RESPONDED: %s", updated.Status)
	}
	if updated.RespondedAt == nil {
		t.Error("流转到 RESPONDED 应写入响应时间戳")
	}

	/* 不存在的消息返回 (nil, nil)，由 handler 映射为 404 */
	missing, err := svc.UpdateContactStatus(ctx, "no-such-id", models.ContactRead)
	if err != nil {
		t.Fatalf("不存在的消息不应报错: %v", err)
	}
	if missing != nil {
		t.Error("不存在的消息应返回 nil")
	}
}

/*
TestDashboardSummaryCounts 测试仪表盘聚合计数
*/
func TestDashboardSummaryCounts(t *testing.T) {
	svc, _, _ := setupContentService(t)
	ctx := context.Background()

	if err := svc.CreateSkill(ctx, &models.Skill{Name: "Go", Category: "language"}); err != nil {
		t.Fatalf("创建技能失败: %v", err)
	}
	if err := svc.CreateProject(ctx, &models.Project{Title: "P", Slug: "p"}); err != nil {
		t.Fatalf("创建项目失败: %v", err)
	}
	if err := svc.CreatePost(ctx, &models.BlogPost{Title: "T", Slug: "t", Published: true}); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}
	if err := svc.SubmitContactMessage(ctx, &models.ContactMessage{
		Name: "V", Email: "v@example.com", Body: "hi",
	}); err != nil {
		t.Fatalf("提交消息失败: %v", err)
	}

	summary, err := svc.GetDashboardSummary(ctx)
	if err != nil {
		t.Fatalf("聚合仪表盘失败: %v", err)
	}
	if summary.Skills != 1 || summary.Projects != 1 {
		t.Errorf("实体计数不正确: %+v", summary)
	}
	if summary.Posts != 1 || summary.PublishedPosts != 1 {
		t.Errorf("文章计数不正确: %+v", summary)
	}
	if summary.NewContacts != 1 {
		t.Errorf("未读消息计数不正确: %d", summary.NewContacts)
	}
	if len(summary.RecentContacts) != 1 {
		t.Errorf("最近留言应有 1 条, 实际 %d", len(summary.RecentContacts))
	}
}

/*
TestPublishStampsPublishedAt 测试发布时写入发布时间
*/
func TestPublishStampsPublishedAt(t *testing.T) {
	svc, _, _ := setupContentService(t)
	ctx := context.Background()

	post := &models.BlogPost{Title: "Draft", Slug: "draft"}
	if err := svc.CreatePost(ctx, post); err != nil {
		t.Fatalf("创建草稿失败: %v", err)
	}
	if post.PublishedAt != nil {
		t.Error("草稿不应有发布时间")
	}

	post.Published = true
	if err := svc.UpdatePost(ctx, post); err != nil {
		t.Fatalf("发布失败: %v", err)
	}
	if post.PublishedAt == nil {
		t.Error("发布时应写入发布时间")
	}

	/* 公开端按 slug 读取并自增阅读数 */
	got, err := svc.GetPublishedPostBySlug(ctx, "draft")
	if err != nil || got == nil {
		t.Fatalf("按 slug 读取失败: %v", err)
	}
}
