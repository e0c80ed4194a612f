package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

/*
RedisConfig Redis 连接配置
*/
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`

	/* 连接池配置 */
	PoolSize     int           `yaml:"pool_size" json:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns" json:"min_idle_conns"`
	MaxRetries   int           `yaml:"max_retries" json:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout" json:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
}

/*
RedisClient Redis 客户端封装
功能：为 JWT 密钥持久化等少量共享状态提供可选的 Redis 存储。
Redis 不可用时系统完整降级为纯内存运行。
*/
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

/*
NewRedisClient 创建 Redis 客户端
功能：根据配置初始化 Redis 连接，地址为空时返回 (nil, nil)（Redis 为可选组件）
*/
func NewRedisClient(cfg *RedisConfig) (*RedisClient, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, nil
	}

	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 3 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 3 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx := context.Background()

	/* 测试连接 */
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("Redis 连接失败 [%s]: %w", cfg.Addr, err)
	}

	log.Printf("✓ Redis 连接成功 [%s]", cfg.Addr)

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

/* Set 写入键值，expiration 为 0 表示永不过期 */
func (r *RedisClient) Set(key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(r.ctx, key, value, expiration).Err()
}

/* Get 读取键值 */
func (r *RedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

/* Del 删除键 */
func (r *RedisClient) Del(keys ...string) error {
	return r.client.Del(r.ctx, keys...).Err()
}

/* Exists 检查键是否存在 */
func (r *RedisClient) Exists(key string) (bool, error) {
	n, err := r.client.Exists(r.ctx, key).Result()
	return n > 0, err
}

/* IsNotFound 判断错误是否为键不存在 */
func IsNotFound(err error) bool {
	return err == redis.Nil
}

/* Close 关闭 Redis 连接 */
func (r *RedisClient) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
