package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

/*
Claims 管理员凭据声明
功能：VerifyToken 验证成功后返回的解码结果，
包含持有者身份和令牌有效期信息。
*/
type Claims struct {
	UserID    string
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

/*
GenerateToken 生成管理员凭据令牌
功能：使用 HMAC-SHA256 签名算法生成包含用户信息的 JWT 令牌
参数：userID 用户ID, username 用户名, role 角色, secret 签名密钥, ttl 有效期
*/
func GenerateToken(userID, username, role, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("签名密钥未配置")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("签名令牌失败: %w", err)
	}
	return signed, nil
}

/*
VerifyToken 验证管理员凭据令牌
功能：三层守卫（路径网关、端点守卫、会话校验端点）共用的唯一验证入口。
校验顺序：签名有效性 → 过期时间。任一失败均返回 (nil, false)，
对调用方不区分"篡改"与"过期"。空令牌视为无效而非错误；
jwt 库的内部错误一律吞掉降级为无效，验证失败永不中断调用方请求。
*/
func VerifyToken(tokenStr, secret string) (*Claims, bool) {
	if tokenStr == "" || secret == "" {
		return nil, false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名方法: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	/* jwt/v5 在 Parse 阶段已校验 exp，此处仅做声明提取 */
	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.UserID = sub
	}
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	/* 没有过期时间的令牌不接受，有效期是唯一的失效手段 */
	if claims.ExpiresAt.IsZero() {
		return nil, false
	}

	return claims, true
}
