package types

import (
	"devfolio/internal/cache"
	"devfolio/internal/config"
	"devfolio/internal/db"
	"devfolio/internal/db/dao"
	"devfolio/internal/service"

	"time"
)

/*
App 应用实例
功能：全局应用上下文，聚合配置、数据库管理器、数据访问层、
内容缓存与各业务服务，由路由装配时注入 handler
*/
type App struct {
	Config *config.Config
	DB     *db.Manager
	DAO    *dao.DAO
	Cache  *cache.Store

	Users     *service.UserService
	Content   *service.ContentService
	Analytics *service.AnalyticsService
	Captcha   *service.CaptchaService
	JWT       *service.JWTManager
}

/*
NewApp 创建新的应用实例
*/
func NewApp(cfg *config.Config, dbManager *db.Manager) *App {
	d := dao.New(dbManager.GormDB)
	store := cache.NewStore(cfg.Cache.Capacity, time.Duration(cfg.Cache.DefaultTTL)*time.Second)

	return &App{
		Config:    cfg,
		DB:        dbManager,
		DAO:       d,
		Cache:     store,
		Users:     service.NewUserService(d),
		Content:   service.NewContentService(d, store),
		Analytics: service.NewAnalyticsService(d, &cfg.Analytics),
		Captcha:   service.NewCaptchaService(&cfg.Captcha),
		JWT:       service.NewJWTManager(dbManager, cfg.Auth.JWTSecret),
	}
}
