package service

import (
	"context"
	"testing"

	"devfolio/internal/config"
	"devfolio/internal/db/dao"
	"devfolio/internal/db/models"
)

/* seedUser 创建测试用户 */
func seedUser(t *testing.T, d *dao.DAO, username, password string, enabled bool) *models.User {
	t.Helper()
	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	user := &models.User{
		Username: username,
		Email:    username + "@localhost",
		Password: hashed,
		Role:     models.RoleAdmin,
		Enabled:  enabled,
	}
	if err := d.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user
}

/*
TestHashCheckPassword 测试密码哈希与比对
*/
func TestHashCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if hashed == "s3cret-pass" {
		t.Fatal("不应存储明文密码")
	}
	if !CheckPassword(hashed, "s3cret-pass") {
		t.Error("正确密码应比对通过")
	}
	if CheckPassword(hashed, "wrong") {
		t.Error("错误密码不应比对通过")
	}
}

/*
TestAuthenticate 测试凭据认证的成功与各失败路径
失败路径对调用方返回的错误不区分用户不存在/密码错误
*/
func TestAuthenticate(t *testing.T) {
	d := dao.New(setupTestDB(t))
	svc := NewUserService(d)
	ctx := context.Background()

	seedUser(t, d, "admin", "correct-pass", true)
	seedUser(t, d, "disabled", "correct-pass", false)

	user, err := svc.Authenticate(ctx, "admin", "correct-pass")
	if err != nil {
		t.Fatalf("正确凭据应认证成功: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("返回的用户不正确: %s", user.Username)
	}

	if _, err := svc.Authenticate(ctx, "admin", "wrong-pass"); err == nil {
		t.Error("错误密码应认证失败")
	}
	if _, err := svc.Authenticate(ctx, "nobody", "correct-pass"); err == nil {
		t.Error("不存在的用户应认证失败")
	}
	if _, err := svc.Authenticate(ctx, "disabled", "correct-pass"); err == nil {
		t.Error("禁用账户应认证失败")
	}

	/* Enabled=false 必须原样落库，不得被列默认值覆盖 */
	stored, err := d.GetUserByUsername(ctx, "disabled")
	if err != nil || stored == nil {
		t.Fatalf("读取禁用用户失败: %v", err)
	}
	if stored.Enabled {
		t.Error("禁用状态未持久化，落库后变为启用")
	}

	/* 用户不存在与密码错误返回相同的错误消息 */
	_, errWrongPwd := svc.Authenticate(ctx, "admin", "wrong-pass")
	_, errNoUser := svc.Authenticate(ctx, "nobody", "correct-pass")
	if errWrongPwd.Error() != errNoUser.Error() {
		t.Errorf("失败原因不应可区分: %q vs %q", errWrongPwd, errNoUser)
	}
}

/*
TestAnalyticsVisitorHash 测试访客指纹按天变化且不含原始信息
*/
func TestAnalyticsVisitorHash(t *testing.T) {
	d := dao.New(setupTestDB(t))
	svc := NewAnalyticsService(d, &config.AnalyticsConfig{
		Enabled:     true,
		VisitorSalt: "test-salt",
	})
	ctx := context.Background()

	if err := svc.RecordPageView(ctx, "/projects?tab=1", "", "10.0.0.1", "Mozilla/5.0"); err != nil {
		t.Fatalf("记录访问失败: %v", err)
	}

	var views []models.PageView
	if err := d.DB.Find(&views).Error; err != nil {
		t.Fatalf("查询访问记录失败: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("应有 1 条记录, 实际 %d", len(views))
	}

	v := views[0]
	if v.Path != "/projects" {
		t.Errorf("路径应去除查询串: %s", v.Path)
	}
	if v.VisitorHash == "" || v.VisitorHash == "10.0.0.1" {
		t.Errorf("指纹不应为空或原始 IP: %s", v.VisitorHash)
	}
	if v.Day.Hour() != 0 || v.Day.Minute() != 0 || v.Day.Second() != 0 {
		t.Errorf("Day 应零点对齐: %v", v.Day)
	}

	/* 无效路径拒绝 */
	if err := svc.RecordPageView(ctx, "not-a-path", "", "10.0.0.1", "UA"); err == nil {
		t.Error("非 / 开头的路径应被拒绝")
	}
}
