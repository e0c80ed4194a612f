package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 全局配置
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
	Captcha   CaptchaConfig   `yaml:"captcha"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Mode         string `yaml:"mode"` // debug, release
	ReadTimeout  int    `yaml:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout"`

	/* CORS 跨域配置 */
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"` /* 允许的来源列表，["*"] 表示允许所有（仅开发环境） */

	/* 管理后台静态资源目录，为空或不存在时不挂载页面路由 */
	AdminWebDir string `yaml:"admin_web_dir"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Type     string `yaml:"type"`     // 数据库类型: sqlite, mysql, postgres
	Host     string `yaml:"host"`     // 数据库主机
	Port     int    `yaml:"port"`     // 数据库端口
	User     string `yaml:"user"`     // 数据库用户名
	Password string `yaml:"password"` // 数据库密码
	DBName   string `yaml:"db_name"`  // 数据库名称
	SSLMode  string `yaml:"ssl_mode"` // SSL模式 (postgres)
	Charset  string `yaml:"charset"`  // 字符集 (mysql)

	/* SQLite 专用 */
	SQLitePath string `yaml:"sqlite_path"`

	/* 连接池 */
	MaxOpenConns int `yaml:"max_open_conns"` // 最大打开连接数
	MaxIdleConns int `yaml:"max_idle_conns"` // 最大空闲连接数

	/* 日志 */
	LogLevel string `yaml:"log_level"` // silent, error, warn, info
}

// RedisConfig Redis配置
type RedisConfig struct {
	Addr         string `yaml:"addr"`
	Password     string `yaml:"password"`
	DB           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool_size"`
	MinIdleConns int    `yaml:"min_idle_conns"`
	MaxRetries   int    `yaml:"max_retries"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	JWTExpiration int    `yaml:"jwt_expiration"` // 单位：小时
	AdminUsername string `yaml:"admin_username"` // 首次启动创建的管理员用户名
	AdminPassword string `yaml:"admin_password"` // 首次启动创建的管理员密码，为空则随机生成
	CookieName    string `yaml:"cookie_name"`    // 凭据 Cookie 名称
	CookieSecure  bool   `yaml:"cookie_secure"`  // Cookie 仅 HTTPS 传输
}

// CacheConfig 管理端数据缓存配置
type CacheConfig struct {
	DefaultTTL int `yaml:"default_ttl"` // 默认缓存有效期（秒），默认 300
	Capacity   int `yaml:"capacity"`    // 最大条目数，默认 100，超出按插入顺序淘汰
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Format     string `yaml:"format"`      // json, console
	OutputPath string `yaml:"output_path"` // 日志文件路径
	MaxSize    int    `yaml:"max_size"`    // 单个日志文件大小(MB)
	MaxBackups int    `yaml:"max_backups"` // 保留的旧日志文件数量
	MaxAge     int    `yaml:"max_age"`     // 保留天数
	Compress   bool   `yaml:"compress"`    // 是否压缩
}

// CaptchaConfig 登录验证码配置
type CaptchaConfig struct {
	Enabled     bool `yaml:"enabled"`      // 管理员登录是否启用图片验证码
	ImageWidth  int  `yaml:"image_width"`  // 验证码图片宽度
	ImageHeight int  `yaml:"image_height"` // 验证码图片高度
	CodeLength  int  `yaml:"code_length"`  // 验证码字符数
	Expiration  int  `yaml:"expiration"`   // 过期时间（秒）
}

// AnalyticsConfig 页面访问统计配置
type AnalyticsConfig struct {
	Enabled       bool   `yaml:"enabled"`        // 是否记录页面访问
	VisitorSalt   string `yaml:"visitor_salt"`   // 访客指纹哈希盐值，防止存储原始 IP/UA
	RetentionDays int    `yaml:"retention_days"` // 访问记录保留天数，0 表示永久
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.warnInsecureDefaults()
	return config, nil
}

/*
warnInsecureDefaults 检查生产环境下是否使用了不安全的默认值
功能：在 release 模式下对 JWT 默认密钥、默认管理员密码等输出警告日志，
提醒运维人员及时修改，避免上线后被利用。
*/
func (c *Config) warnInsecureDefaults() {
	if c.Server.Mode != "release" {
		return
	}

	if c.Auth.JWTSecret == "change-this-secret-in-production" || len(c.Auth.JWTSecret) < 16 {
		fmt.Println("[SECURITY WARNING] 生产环境使用了默认或过短的 JWT 密钥，请立即修改 auth.jwt_secret")
	}
	if c.Auth.AdminPassword == "admin123" {
		fmt.Println("[SECURITY WARNING] 生产环境使用了默认管理员密码 'admin123'，请立即修改 auth.admin_password")
	}
	if !c.Auth.CookieSecure {
		fmt.Println("[SECURITY WARNING] 生产环境凭据 Cookie 未启用 Secure 标记，请配置 auth.cookie_secure")
	}
	for _, o := range c.Server.CORSAllowedOrigins {
		if o == "*" {
			fmt.Println("[SECURITY WARNING] 生产环境 CORS 允许所有来源（*），请配置具体域名白名单 server.cors_allowed_origins")
			break
		}
	}
}

// LoadConfigOrDefault 加载配置或使用默认值
func LoadConfigOrDefault(path string) *Config {
	if path == "" {
		return DefaultConfig()
	}

	config, err := LoadConfig(path)
	if err != nil {
		fmt.Printf("Failed to load config: %v, using defaults\n", err)
		return DefaultConfig()
	}

	return config
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			Mode:               "debug",
			ReadTimeout:        30,
			WriteTimeout:       30,
			CORSAllowedOrigins: []string{"*"}, /* 开发模式默认允许所有，生产环境应改为具体域名 */
			AdminWebDir:        "./web",
		},
		Database: DatabaseConfig{
			Type:         "sqlite",
			SQLitePath:   "./data/devfolio.db",
			Host:         "localhost",
			Port:         3306,
			User:         "root",
			Password:     "",
			DBName:       "devfolio",
			SSLMode:      "disable",
			Charset:      "utf8mb4",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
			LogLevel:     "warn",
		},
		Redis: RedisConfig{
			Addr:         "",
			Password:     "",
			DB:           0,
			PoolSize:     10,
			MinIdleConns: 3,
			MaxRetries:   3,
		},
		Auth: AuthConfig{
			JWTSecret:     "change-this-secret-in-production",
			JWTExpiration: 24,
			AdminUsername: "admin",
			AdminPassword: "",
			CookieName:    "adminToken",
			CookieSecure:  false,
		},
		Cache: CacheConfig{
			DefaultTTL: 300,
			Capacity:   100,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "./logs/devfolio.log",
			MaxSize:    100,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		},
		Captcha: CaptchaConfig{
			Enabled:     false,
			ImageWidth:  240,
			ImageHeight: 80,
			CodeLength:  6,
			Expiration:  300,
		},
		Analytics: AnalyticsConfig{
			Enabled:       true,
			VisitorSalt:   "",
			RetentionDays: 180,
		},
	}
}

// SaveConfig 保存配置到文件
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	/* 0600：仅所有者可读写，配置文件含敏感信息（密钥/密码） */
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
