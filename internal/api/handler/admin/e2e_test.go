package admin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"devfolio/internal/api"
	"devfolio/internal/config"
	"devfolio/internal/db"
	"devfolio/internal/db/models"
	"devfolio/internal/pkg/logger"
	"devfolio/internal/service"
	"devfolio/internal/types"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	_ = logger.Init(&logger.Config{Level: "error", Format: "console"})
	os.Exit(m.Run())
}

/*
setupApp 组装测试应用：内存数据库 + 固定密钥 + 预置管理员
*/
func setupApp(t *testing.T) (*types.App, http.Handler) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("创建测试数据库失败: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{}, &models.Profile{}, &models.Skill{}, &models.Project{},
		&models.CaseStudy{}, &models.Experience{}, &models.BlogPost{},
		&models.ContactMessage{}, &models.PageView{},
	)
	if err != nil {
		t.Fatalf("迁移表结构失败: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Auth.JWTSecret = "e2e-test-secret"
	cfg.Server.AdminWebDir = "" /* 不挂载页面路由 */

	app := types.NewApp(cfg, &db.Manager{GormDB: gdb})
	if err := app.JWT.Start(); err != nil {
		t.Fatalf("启动密钥管理器失败: %v", err)
	}
	t.Cleanup(app.JWT.Stop)

	hashed, err := service.HashPassword("e2e-pass")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	admin := &models.User{
		Username: "admin",
		Email:    "admin@localhost",
		Password: hashed,
		Role:     models.RoleAdmin,
		Enabled:  true,
	}
	if err := gdb.Create(admin).Error; err != nil {
		t.Fatalf("创建管理员失败: %v", err)
	}

	return app, api.SetupRouter(app)
}

/* doJSON 发送 JSON 请求 */
func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

/* login 登录并返回令牌 */
func login(t *testing.T, h http.Handler) (string, *httptest.ResponseRecorder) {
	t.Helper()
	w := doJSON(t, h, "POST", "/api/v1/admin/auth/login", "", map[string]string{
		"username": "admin",
		"password": "e2e-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("登录失败: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析登录响应失败: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("登录响应应包含令牌")
	}
	return resp.Token, w
}

/*
TestLoginSetsCookieAndReturnsToken 测试登录下发 HttpOnly Cookie 和令牌
*/
func TestLoginSetsCookieAndReturnsToken(t *testing.T) {
	app, h := setupApp(t)

	_, w := login(t, h)

	var authCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == app.Config.Auth.CookieName {
			authCookie = c
		}
	}
	if authCookie == nil {
		t.Fatal("登录应写入凭据 Cookie")
	}
	if !authCookie.HttpOnly {
		t.Error("凭据 Cookie 应为 HttpOnly")
	}
	if authCookie.Value == "" || authCookie.MaxAge <= 0 {
		t.Errorf("凭据 Cookie 应携带令牌和有效期: MaxAge=%d", authCookie.MaxAge)
	}
}

/*
TestLoginWrongPassword 测试错误凭据统一返回 401
*/
func TestLoginWrongPassword(t *testing.T) {
	_, h := setupApp(t)

	for _, creds := range []map[string]string{
		{"username": "admin", "password": "wrong"},
		{"username": "nobody", "password": "e2e-pass"},
	} {
		w := doJSON(t, h, "POST", "/api/v1/admin/auth/login", "", creds)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("错误凭据应返回 401: %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"error":"Unauthorized"`)) {
			t.Errorf("响应体应为统一的 Unauthorized: %s", w.Body.String())
		}
	}
}

/*
TestLogoutClearsCookie 测试登出由服务端清除 Cookie
*/
func TestLogoutClearsCookie(t *testing.T) {
	app, h := setupApp(t)
	token, _ := login(t, h)

	w := doJSON(t, h, "POST", "/api/v1/admin/auth/logout", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("登出失败: %d", w.Code)
	}

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == app.Config.Auth.CookieName {
			cleared = c
		}
	}
	if cleared == nil {
		t.Fatal("登出应下发清除 Cookie 的 Set-Cookie")
	}
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Errorf("Cookie 应被清除: value=%q maxAge=%d", cleared.Value, cleared.MaxAge)
	}
}

/*
TestAdminEndpointsRequireAuth 测试管理端点全部要求认证
*/
func TestAdminEndpointsRequireAuth(t *testing.T) {
	_, h := setupApp(t)

	paths := []struct{ method, path string }{
		{"GET", "/api/v1/admin/skills"},
		{"POST", "/api/v1/admin/skills"},
		{"GET", "/api/v1/admin/contacts"},
		{"GET", "/api/v1/admin/dashboard"},
		{"GET", "/api/v1/admin/auth/check"},
		{"PUT", "/api/v1/admin/profile"},
	}
	for _, p := range paths {
		w := doJSON(t, h, p.method, p.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s 无凭据应返回 401, 实际 %d", p.method, p.path, w.Code)
		}
	}
}

/*
TestSkillCRUDAndPublicVisibility 测试管理端 CRUD 与公开端可见性
*/
func TestSkillCRUDAndPublicVisibility(t *testing.T) {
	_, h := setupApp(t)
	token, _ := login(t, h)

	/* 创建 */
	w := doJSON(t, h, "POST", "/api/v1/admin/skills", token, map[string]interface{}{
		"name": "Go", "category": "language", "level": 90,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建技能失败: %d %s", w.Code, w.Body.String())
	}
	var skill models.Skill
	if err := json.Unmarshal(w.Body.Bytes(), &skill); err != nil {
		t.Fatalf("解析创建响应失败: %v", err)
	}

	/* 管理端列表：分页信封 */
	w = doJSON(t, h, "GET", "/api/v1/admin/skills?page=1&limit=10", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("列出技能失败: %d", w.Code)
	}
	var paged struct {
		Items      []models.Skill `json:"items"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &paged); err != nil {
		t.Fatalf("解析分页信封失败: %v", err)
	}
	if len(paged.Items) != 1 || paged.Pagination.Total != 1 || paged.Pagination.Pages != 1 {
		t.Errorf("分页信封不正确: %s", w.Body.String())
	}

	/* 更新 */
	w = doJSON(t, h, "PUT", "/api/v1/admin/skills/"+skill.ID, token, map[string]interface{}{
		"name": "Golang", "category": "language", "level": 95,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("更新技能失败: %d %s", w.Code, w.Body.String())
	}

	/* 公开端可见（写后失效，读穿透回源） */
	w = doJSON(t, h, "GET", "/api/v1/skills", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("公开技能列表失败: %d", w.Code)
	}
	var publicSkills []models.Skill
	if err := json.Unmarshal(w.Body.Bytes(), &publicSkills); err != nil {
		t.Fatalf("解析公开列表失败: %v", err)
	}
	if len(publicSkills) != 1 || publicSkills[0].Name != "Golang" {
		t.Errorf("公开端应看到最新数据: %s", w.Body.String())
	}

	/* 删除 */
	w = doJSON(t, h, "DELETE", "/api/v1/admin/skills/"+skill.ID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("删除技能失败: %d", w.Code)
	}
	w = doJSON(t, h, "DELETE", "/api/v1/admin/skills/"+skill.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("重复删除应返回 404: %d", w.Code)
	}
}

/*
TestContactFlow 测试公开提交 → 管理端状态流转
*/
func TestContactFlow(t *testing.T) {
	_, h := setupApp(t)
	token, _ := login(t, h)

	/* 公开提交 */
	w := doJSON(t, h, "POST", "/api/v1/contact", "", map[string]string{
		"name": "Visitor", "email": "v@example.com", "body": "Hi there",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("提交联系消息失败: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("解析提交响应失败: %v", err)
	}

	/* 表单校验失败返回 400 */
	w = doJSON(t, h, "POST", "/api/v1/contact", "", map[string]string{
		"name": "NoEmail", "body": "x",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少必填字段应返回 400: %d", w.Code)
	}

	/* 管理端状态流转 */
	w = doJSON(t, h, "PATCH", "/api/v1/admin/contacts/"+created.ID+"/status", token,
		map[string]string{"status": "RESPONDED"})
	if w.Code != http.StatusOK {
		t.Fatalf("状态流转失败: %d %s", w.Code, w.Body.String())
	}
	var msg models.ContactMessage
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("解析消息失败: %v", err)
	}
	if msg.Status != models.ContactResponded || msg.RespondedAt == nil {
		t.Errorf("RESPONDED 流转应写入时间戳: %+v", msg)
	}

	/* 非法状态值返回 400 */
	w = doJSON(t, h, "PATCH", "/api/v1/admin/contacts/"+created.ID+"/status", token,
		map[string]string{"status": "BOGUS"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("非法状态值应返回 400: %d", w.Code)
	}

	/* 不存在的消息返回 404（而非 401） */
	w = doJSON(t, h, "PATCH", "/api/v1/admin/contacts/no-such-id/status", token,
		map[string]string{"status": "READ"})
	if w.Code != http.StatusNotFound {
		t.Errorf("不存在的消息应返回 404: %d", w.Code)
	}
}

/*
TestBlogPublicOnlyPublished 测试公开端只见已发布文章
*/
func TestBlogPublicOnlyPublished(t *testing.T) {
	_, h := setupApp(t)
	token, _ := login(t, h)

	w := doJSON(t, h, "POST", "/api/v1/admin/blog", token, map[string]interface{}{
		"title": "Draft", "slug": "draft", "published": false,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建草稿失败: %d", w.Code)
	}
	w = doJSON(t, h, "POST", "/api/v1/admin/blog", token, map[string]interface{}{
		"title": "Live", "slug": "live", "published": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建文章失败: %d", w.Code)
	}

	/* 公开列表只含已发布 */
	w = doJSON(t, h, "GET", "/api/v1/blog", "", nil)
	var paged struct {
		Items []models.BlogPost `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &paged); err != nil {
		t.Fatalf("解析博客列表失败: %v", err)
	}
	if len(paged.Items) != 1 || paged.Items[0].Slug != "live" {
		t.Errorf("公开端应只见已发布文章: %s", w.Body.String())
	}

	/* 草稿按 slug 访问 404 */
	w = doJSON(t, h, "GET", "/api/v1/blog/draft", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("草稿不应公开可见: %d", w.Code)
	}
	w = doJSON(t, h, "GET", "/api/v1/blog/live", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("已发布文章应公开可见: %d", w.Code)
	}

	/* 管理端列表含草稿 */
	w = doJSON(t, h, "GET", "/api/v1/admin/blog", token, nil)
	var adminPaged struct {
		Items []models.BlogPost `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &adminPaged); err != nil {
		t.Fatalf("解析管理端列表失败: %v", err)
	}
	if len(adminPaged.Items) != 2 {
		t.Errorf("管理端应见全部文章: %d 篇", len(adminPaged.Items))
	}
}

/*
TestDashboardAndAnalytics 测试仪表盘与统计端点
*/
func TestDashboardAndAnalytics(t *testing.T) {
	_, h := setupApp(t)
	token, _ := login(t, h)

	/* 上报一次页面访问 */
	w := doJSON(t, h, "POST", "/api/v1/views", "", map[string]string{"path": "/projects"})
	if w.Code != http.StatusNoContent {
		t.Fatalf("访问上报失败: %d", w.Code)
	}

	w = doJSON(t, h, "GET", "/api/v1/admin/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("仪表盘失败: %d %s", w.Code, w.Body.String())
	}
	var summary struct {
		Views30d int64 `json:"views_30d"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("解析仪表盘失败: %v", err)
	}
	if summary.Views30d != 1 {
		t.Errorf("访问量应为 1: %d", summary.Views30d)
	}

	w = doJSON(t, h, "GET", "/api/v1/admin/analytics?days=7", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("统计端点失败: %d %s", w.Code, w.Body.String())
	}
}
