package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devfolio/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	testSecret     = "middleware-test-secret"
	testCookieName = "adminToken"
)

/* staticSecret 测试用密钥提供者 */
type staticSecret string

func (s staticSecret) GetSecret() string { return string(s) }

/* setupAuthRouter 挂载认证中间件保护的探针端点 */
func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/admin/ping", AdminAuth(staticSecret(testSecret), testCookieName), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	return r
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("uid-1", "admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	return token
}

/*
TestAdminAuthBearerHeader 测试 Bearer 头认证通过并注入身份
*/
func TestAdminAuthBearerHeader(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/api/v1/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("有效 Bearer 令牌应通过: %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if body["user_id"] != "uid-1" || body["role"] != "admin" {
		t.Errorf("注入的身份不正确: %v", body)
	}
}

/*
TestAdminAuthCookieFallback 测试无 Authorization 头时回退到 Cookie
*/
func TestAdminAuthCookieFallback(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/api/v1/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: validToken(t)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("有效 Cookie 凭据应通过: %d", w.Code)
	}
}

/*
TestAdminAuthRejects 测试各种无效凭据统一返回 401 {"error":"Unauthorized"}
*/
func TestAdminAuthRejects(t *testing.T) {
	r := setupAuthRouter()

	expired, _ := auth.GenerateToken("uid-1", "admin", "admin", testSecret, -time.Minute)
	wrongKey, _ := auth.GenerateToken("uid-1", "admin", "admin", "other-secret", time.Hour)

	cases := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{"无凭据", func(*http.Request) {}},
		{"畸形头", func(req *http.Request) { req.Header.Set("Authorization", "Basic abc") }},
		{"空 Bearer", func(req *http.Request) { req.Header.Set("Authorization", "Bearer ") }},
		{"过期令牌", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+expired) }},
		{"错误密钥", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+wrongKey) }},
		{"无效 Cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/admin/ping", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("应返回 401, 实际 %d", w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("响应解析失败: %v", err)
			}
			if body["error"] != "Unauthorized" {
				t.Errorf(`响应体应为 {"error":"Unauthorized"}, 实际 %s`, w.Body.String())
			}
		})
	}
}

/*
TestAdminAuthHeaderTakesPrecedence 测试 Bearer 头优先于 Cookie
头部携带无效令牌时即使 Cookie 有效也应拒绝
*/
func TestAdminAuthHeaderTakesPrecedence(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest("GET", "/api/v1/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: validToken(t)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("无效 Bearer 头不应回退到 Cookie: %d", w.Code)
	}
}
