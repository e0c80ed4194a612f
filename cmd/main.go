package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devfolio/internal/api"
	"devfolio/internal/config"
	"devfolio/internal/db"
	"devfolio/internal/pkg/initializer"
	"devfolio/internal/pkg/logger"
	"devfolio/internal/service"
	"devfolio/internal/types"

	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "./config.yaml", "配置文件路径")
	port       = flag.Int("port", 0, "覆盖服务器端口")
)

/*
main 程序入口
启动流程：
 1. 初始化引导日志 → 检测首次运行 → 创建目录/配置
 2. 加载配置文件 → 用配置重新初始化日志
 3. 初始化数据库（SQLite/MySQL/Postgres + 可选 Redis）→ 创建管理员
 4. 启动后台服务：JWT 密钥管理器、访问记录清理服务
 5. 组装应用与路由 → 启动 HTTP 服务器
 6. 等待 SIGINT/SIGTERM → 优雅关闭
*/
func main() {
	startupBegin := time.Now()
	flag.Parse()

	/* 阶段 1：引导日志（配置加载前使用临时 console 日志） */
	if err := logger.Init(&logger.Config{
		Level:  "info",
		Format: "console",
	}); err != nil {
		log.Fatalf("初始化日志系统失败: %v", err)
	}
	defer logger.Sync()

	/* 阶段 2：首次运行检测与初始化 */
	isFirstRun := initializer.IsFirstRun(*configPath)
	if err := initializer.InitDirectories(); err != nil {
		logger.Fatal("初始化目录失败", zap.Error(err))
	}
	if isFirstRun {
		initializer.PrintWelcome()
		if err := initializer.InitConfig(*configPath); err != nil {
			logger.Fatal("初始化配置失败", zap.Error(err))
		}
	}

	/* 阶段 3：加载配置 → 用配置重新初始化日志系统 */
	cfg := config.LoadConfigOrDefault(*configPath)
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if err := logger.Init(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.OutputPath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		logger.Fatal("重新初始化日志系统失败", zap.Error(err))
	}

	/* 阶段 4：初始化数据库（必须串行，后续服务依赖它） */
	dbStart := time.Now()
	dbManager, err := db.NewManager(&db.Config{
		DBType:        cfg.Database.Type,
		SQLitePath:    cfg.Database.SQLitePath,
		DBHost:        cfg.Database.Host,
		DBPort:        cfg.Database.Port,
		DBUser:        cfg.Database.User,
		DBPassword:    cfg.Database.Password,
		DBName:        cfg.Database.DBName,
		DBSSLMode:     cfg.Database.SSLMode,
		DBCharset:     cfg.Database.Charset,
		MaxOpenConns:  cfg.Database.MaxOpenConns,
		MaxIdleConns:  cfg.Database.MaxIdleConns,
		DBLogLevel:    cfg.Database.LogLevel,
		RedisAddr:     cfg.Redis.Addr,
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer dbManager.Close()
	logger.Info("✓ 数据库初始化完成", zap.Duration("耗时", time.Since(dbStart)))

	/* 首次启动：创建管理员账户（空数据库时自动执行） */
	if err := initializer.InitAdmin(dbManager.GormDB, &cfg.Auth); err != nil {
		logger.Fatal("初始化管理员失败", zap.Error(err))
	}

	/* 阶段 5：组装应用上下文（含 DAO、缓存与各业务服务） */
	app := types.NewApp(cfg, dbManager)

	/* JWT 密钥管理器：加载/生成签名密钥 */
	if err := app.JWT.Start(); err != nil {
		logger.Fatal("初始化 JWT 密钥管理器失败", zap.Error(err))
	}
	defer app.JWT.Stop()

	/* 访问记录清理服务：按保留期策略定期清理 */
	cleanupService := service.NewCleanupService(app.DAO, cfg.Analytics.RetentionDays)
	go cleanupService.Start()
	defer cleanupService.Stop()

	/* 阶段 6：组装路由 + 启动 HTTP 服务器 */
	router := api.SetupRouter(app)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("✓ HTTP 服务器启动", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常退出", zap.Error(err))
		}
	}()

	logger.Info("✓ DevFolio 启动完成",
		zap.Duration("总耗时", time.Since(startupBegin)),
		zap.String("监听地址", addr))

	/* 阶段 7：等待退出信号 → 优雅关闭 */
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("收到退出信号，正在优雅关闭...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	logger.Info("✓ 服务器已停止")
}
