package main

import (
	"fmt"
	"log"
	"net/http"

	"webafan-portfolio/app/server/handlers"
	"webafan-portfolio/app/server/inits"
	"webafan-portfolio/app/server/jwt"
	"webafan-portfolio/app/server/middlewares"
	"webafan-portfolio/app/server/whatsapp"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 本地开发时从 .env 读取环境变量，没有也没关系
	_ = godotenv.Load()

	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化 WhatsApp 通知
	wa := whatsapp.New(cfg.WhatsApp.APIURL, cfg.WhatsApp.Token, cfg.WhatsApp.Sender)
	if !wa.Enabled() {
		l.Warn("whatsapp notifier is not configured, contact notifications are disabled")
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, wa, cfg)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.System.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	// 认证中间件：在所有端点之前解析身份，授权判断由各端点完成
	e.Use(middlewares.AuthGate(db, rdb, j, l))

	// 绑定 echo 服务
	handlerApp.RegisterRoutes(e)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
