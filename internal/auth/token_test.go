package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-0123456789abcdef"

/*
TestGenerateVerifyRoundTrip 测试签发后验证通过并还原身份
*/
func TestGenerateVerifyRoundTrip(t *testing.T) {
	token, err := GenerateToken("uid-1", "admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	claims, ok := VerifyToken(token, testSecret)
	if !ok {
		t.Fatal("有效令牌验证失败")
	}
	if claims.UserID != "uid-1" || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("身份还原不正确: %+v", claims)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("有效期应在未来")
	}
}

/*
TestVerifyWrongSecret 测试错误密钥验证失败
*/
func TestVerifyWrongSecret(t *testing.T) {
	token, err := GenerateToken("uid-1", "admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	if _, ok := VerifyToken(token, "other-secret"); ok {
		t.Error("错误密钥不应通过验证")
	}
}

/*
TestVerifyExpired 测试过期令牌验证失败
*/
func TestVerifyExpired(t *testing.T) {
	token, err := GenerateToken("uid-1", "admin", "admin", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	if _, ok := VerifyToken(token, testSecret); ok {
		t.Error("过期令牌不应通过验证")
	}
}

/*
TestVerifyMalformed 测试畸形输入统一返回失败而非报错细节
*/
func TestVerifyMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-jwt",
		"aaa.bbb.ccc",
	}
	for _, tc := range cases {
		if _, ok := VerifyToken(tc, testSecret); ok {
			t.Errorf("畸形令牌 %q 不应通过验证", tc)
		}
	}
}

/*
TestVerifyEmptySecret 测试密钥未配置时一律拒绝
*/
func TestVerifyEmptySecret(t *testing.T) {
	token, err := GenerateToken("uid-1", "admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	if _, ok := VerifyToken(token, ""); ok {
		t.Error("空密钥不应通过验证")
	}
}

/*
TestVerifyTampered 测试篡改载荷后签名校验失败
*/
func TestVerifyTampered(t *testing.T) {
	token, err := GenerateToken("uid-1", "admin", "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("非法的 JWT 结构: %s", token)
	}
	/* 换一个不同载荷但保留原签名 */
	other, _ := GenerateToken("uid-2", "evil", "admin", testSecret, time.Hour)
	otherParts := strings.Split(other, ".")
	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]

	if _, ok := VerifyToken(tampered, testSecret); ok {
		t.Error("篡改的令牌不应通过验证")
	}
}

/*
TestVerifyRejectsNonHMAC 测试非 HMAC 签名算法被拒绝
*/
func TestVerifyRejectsNonHMAC(t *testing.T) {
	/* alg=none 且无签名 */
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("构造 none 令牌失败: %v", err)
	}

	if _, ok := VerifyToken(signed, testSecret); ok {
		t.Error("none 算法令牌不应通过验证")
	}
}

/*
TestVerifyMissingExpiry 测试缺少 exp 声明的令牌被拒绝
*/
func TestVerifyMissingExpiry(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "uid-1",
		"username": "admin",
		"role":     "admin",
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("构造令牌失败: %v", err)
	}

	if _, ok := VerifyToken(signed, testSecret); ok {
		t.Error("缺少有效期的令牌不应通过验证")
	}
}
