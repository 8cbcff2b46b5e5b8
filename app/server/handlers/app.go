package handlers

import (
	"webafan-portfolio/app/server/config"
	"webafan-portfolio/app/server/jwt"
	"webafan-portfolio/app/server/whatsapp"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger      // 日志
	db  *gorm.DB         // 数据库
	rdb *redis.Client    // Redis
	jwt *jwt.JWT         // JWT ，用于无状态验证
	wa  *whatsapp.Client // WhatsApp 通知
	cfg *config.Config   // 运行配置
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT, wa *whatsapp.Client, cfg *config.Config) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,
		wa:  wa,
		cfg: cfg,
	}
}
