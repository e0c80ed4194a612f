package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devfolio/internal/auth"

	"github.com/gin-gonic/gin"
)

/* setupGateRouter 挂载门卫中间件保护的管理页面路由 */
func setupGateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	gate := AdminGate(staticSecret(testSecret), testCookieName)
	page := func(c *gin.Context) { c.String(200, "page") }
	r.GET("/admin", gate, page)
	r.GET("/admin/*path", gate, page)
	return r
}

/*
TestGateRedirectsWithoutCookie 测试无 Cookie 访问管理页面被重定向到登录页
*/
func TestGateRedirectsWithoutCookie(t *testing.T) {
	r := setupGateRouter()

	for _, path := range []string{"/admin", "/admin/dashboard", "/admin/blog/edit"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Errorf("%s 应返回 302, 实际 %d", path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != AdminLoginPath {
			t.Errorf("%s 应重定向到 %s, 实际 %s", path, AdminLoginPath, loc)
		}
	}
}

/*
TestGateRedirectsInvalidCookie 测试无效/过期 Cookie 同样被重定向
*/
func TestGateRedirectsInvalidCookie(t *testing.T) {
	r := setupGateRouter()

	expired, _ := auth.GenerateToken("uid-1", "admin", "admin", testSecret, -time.Minute)
	for _, value := range []string{"garbage", expired, ""} {
		req := httptest.NewRequest("GET", "/admin/dashboard", nil)
		if value != "" {
			req.AddCookie(&http.Cookie{Name: testCookieName, Value: value})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Errorf("无效凭据应返回 302, 实际 %d", w.Code)
		}
	}
}

/*
TestGateAllowsValidCookie 测试有效 Cookie 放行页面请求
*/
func TestGateAllowsValidCookie(t *testing.T) {
	r := setupGateRouter()

	token, err := auth.GenerateToken("uid-1", "admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("有效凭据应放行: %d", w.Code)
	}
}

/*
TestGateAlwaysAllowsLoginPage 测试登录页放行，避免重定向循环
*/
func TestGateAlwaysAllowsLoginPage(t *testing.T) {
	r := setupGateRouter()

	req := httptest.NewRequest("GET", AdminLoginPath, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("登录页应始终放行: %d", w.Code)
	}
}

/*
TestGateIgnoresBearerHeader 测试页面门卫只认 Cookie
页面导航不会携带 Authorization 头，即使有也不作为页面凭据
*/
func TestGateIgnoresBearerHeader(t *testing.T) {
	r := setupGateRouter()

	token, _ := auth.GenerateToken("uid-1", "admin", "admin", testSecret, time.Hour)
	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("无 Cookie 时应重定向, 实际 %d", w.Code)
	}
}
