package initializer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"devfolio/internal/config"
	"devfolio/internal/db/models"
	"devfolio/internal/pkg/logger"
	"devfolio/internal/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IsFirstRun 检查是否首次运行
func IsFirstRun(configPath string) bool {
	_, err := os.Stat(configPath)
	return os.IsNotExist(err)
}

// InitConfig 初始化配置文件
func InitConfig(configPath string) error {
	// 确保目录存在
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	// 生成默认配置
	cfg := config.DefaultConfig()

	/* 生成随机 JWT 密钥与访客指纹盐值 */
	cfg.Auth.JWTSecret = generateRandomSecret()
	cfg.Analytics.VisitorSalt = generateRandomSecret()

	// 保存配置文件
	if err := config.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("保存配置文件失败: %w", err)
	}

	logger.Info("✓ 配置文件已生成", zap.String("path", configPath))
	return nil
}

// InitDirectories 初始化必要的目录
func InitDirectories() error {
	dirs := []string{
		"./data",
		"./logs",
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建目录失败 %s: %w", dir, err)
		}
	}

	return nil
}

/* generateRandomSecret 生成 32 字节（256 位）随机密钥 */
func generateRandomSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		/* 极端情况下回退到时间戳+PID（不应发生） */
		return fmt.Sprintf("devfolio-fallback-%d-%d", os.Getpid(), os.Getppid())
	}
	return hex.EncodeToString(bytes)
}

/*
InitAdmin 初始化管理员账户
功能：数据库无用户时创建管理员。用户名取配置，密码取配置或随机生成；
随机密码仅在本次启动的控制台打印一次。站点不提供注册入口，
这是唯一的账户创建途径。
*/
func InitAdmin(db *gorm.DB, cfg *config.AuthConfig) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("查询用户数量失败: %w", err)
	}
	if count > 0 {
		return nil /* 已有用户，跳过 */
	}

	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}

	password := cfg.AdminPassword
	generated := false
	if password == "" {
		pwdBytes := make([]byte, 8)
		if _, err := rand.Read(pwdBytes); err != nil {
			return fmt.Errorf("生成随机密码失败: %w", err)
		}
		password = hex.EncodeToString(pwdBytes)
		generated = true
	}

	hashedPwd, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("哈希密码失败: %w", err)
	}

	admin := &models.User{
		Username: username,
		Email:    username + "@localhost",
		Password: hashedPwd,
		Role:     models.RoleAdmin,
		Enabled:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	if generated {
		/* 在控制台醒目打印凭据 */
		fmt.Println("")
		fmt.Println("╔══════════════════════════════════════════════════╗")
		fmt.Println("║           默认管理员账户已创建                   ║")
		fmt.Println("╠══════════════════════════════════════════════════╣")
		fmt.Printf("║  用户名: %-39s║\n", username)
		fmt.Printf("║  密  码: %-39s║\n", password)
		fmt.Println("╠══════════════════════════════════════════════════╣")
		fmt.Println("║  ⚠ 请登录后立即修改密码！                       ║")
		fmt.Println("╚══════════════════════════════════════════════════╝")
		fmt.Println("")
	}

	logger.Info("✓ 管理员账户已创建", zap.String("username", username))
	return nil
}

// PrintWelcome 打印欢迎信息
func PrintWelcome() {
	welcome := `
╔═══════════════════════════════════════════════════╗
║                                                   ║
║   ██████╗ ███████╗██╗   ██╗                      ║
║   ██╔══██╗██╔════╝██║   ██║                      ║
║   ██║  ██║█████╗  ██║   ██║                      ║
║   ██║  ██║██╔══╝  ╚██╗ ██╔╝                      ║
║   ██████╔╝███████╗ ╚████╔╝  folio                ║
║   ╚═════╝ ╚══════╝  ╚═══╝                        ║
║                                                   ║
║        Developer Portfolio & Back-office          ║
║                                                   ║
╚═══════════════════════════════════════════════════╝
`
	fmt.Println(welcome)
}
