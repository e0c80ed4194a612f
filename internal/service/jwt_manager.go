package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"devfolio/internal/db"
	"devfolio/internal/pkg/logger"

	"go.uber.org/zap"
)

const (
	/* JWT 密钥在 Redis 中的键名 */
	JWTSecretRedisKey = "devfolio:jwt:secret"
	/* JWT 密钥同步间隔（多实例部署时与 Redis 保持一致） */
	JWTSecretSyncInterval = 24 * time.Hour
	/* JWT 密钥长度（64字节 = 512位） */
	JWTSecretLength = 64
)

/*
JWTManager JWT 密钥管理器
功能：为凭据签名提供密钥。配置文件显式指定密钥时直接使用；
否则生成随机密钥并持久化到 Redis（可用时），
保证重启后已发放的凭据不因密钥变化而全部失效。
*/
type JWTManager struct {
	db               *db.Manager
	configuredSecret string
	stopChan         chan struct{}

	/* currentSecret 被请求协程读取、同步循环写入，须加锁 */
	mu            sync.RWMutex
	currentSecret string
}

/*
NewJWTManager 创建 JWT 密钥管理器
configuredSecret 为配置文件中的密钥，为空或为不安全默认值时忽略
*/
func NewJWTManager(dbManager *db.Manager, configuredSecret string) *JWTManager {
	if configuredSecret == "change-this-secret-in-production" {
		configuredSecret = ""
	}
	return &JWTManager{
		db:               dbManager,
		configuredSecret: configuredSecret,
		stopChan:         make(chan struct{}),
	}
}

/*
Start 启动 JWT 密钥管理器
*/
func (m *JWTManager) Start() error {
	if m.configuredSecret != "" {
		m.setSecret(m.configuredSecret)
		return nil
	}

	secret, err := m.loadOrGenerateSecret()
	if err != nil {
		return fmt.Errorf("初始化 JWT 密钥失败: %w", err)
	}
	m.setSecret(secret)

	/* 仅在使用生成密钥 + Redis 可用时才需要后台同步 */
	if m.db.HasRedis() {
		go m.syncLoop()
	}
	return nil
}

/* Stop 停止 JWT 密钥管理器 */
func (m *JWTManager) Stop() {
	close(m.stopChan)
}

/* GetSecret 获取当前签名密钥 */
func (m *JWTManager) GetSecret() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentSecret
}

/* setSecret 原子替换当前签名密钥 */
func (m *JWTManager) setSecret(secret string) {
	m.mu.Lock()
	m.currentSecret = secret
	m.mu.Unlock()
}

/* loadOrGenerateSecret 加载或生成新的 JWT 密钥 */
func (m *JWTManager) loadOrGenerateSecret() (string, error) {
	if !m.db.HasRedis() {
		return m.generateSecret()
	}

	/* 尝试从 Redis 加载 */
	secret, err := m.db.Redis.Get(JWTSecretRedisKey)
	if err == nil && secret != "" {
		logger.Info("✓ 从 Redis 加载 JWT 密钥")
		return secret, nil
	}

	secret, err = m.generateSecret()
	if err != nil {
		return "", err
	}

	/* 永久保存（不设置过期时间），密钥轮换由管理员手动触发 */
	if err := m.db.Redis.Set(JWTSecretRedisKey, secret, 0); err != nil {
		logger.Warn("保存 JWT 密钥到 Redis 失败（将仅使用内存密钥）", zap.Error(err))
	}

	return secret, nil
}

/* generateSecret 生成随机 JWT 密钥 */
func (m *JWTManager) generateSecret() (string, error) {
	bytes := make([]byte, JWTSecretLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("生成随机密钥失败: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

/*
syncLoop 后台密钥同步循环
功能：定期检查 Redis 中的密钥是否与内存一致（多实例部署场景），
不自动轮换——自动轮换会使所有已发放的凭据立即失效，管理员被强制登出。
*/
func (m *JWTManager) syncLoop() {
	ticker := time.NewTicker(JWTSecretSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			redisSecret, err := m.db.Redis.Get(JWTSecretRedisKey)
			if err == nil && redisSecret != "" && redisSecret != m.GetSecret() {
				m.setSecret(redisSecret)
				logger.Info("JWT 密钥已从 Redis 同步（多实例一致性）")
			}
		case <-m.stopChan:
			return
		}
	}
}
