package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/WishLedger/internal/api"
	"github.com/leon37/WishLedger/internal/api/controller"
	"github.com/leon37/WishLedger/internal/api/middleware"
	"github.com/leon37/WishLedger/internal/config"
	"github.com/leon37/WishLedger/internal/infrastructure/database"
	"github.com/leon37/WishLedger/internal/repository"
	"github.com/leon37/WishLedger/internal/service"
)

// @title           WishLedger API
// @version         1.0
// @description     心愿清单 + 纪念日追踪系统，基于 Go + Gin + GORM

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 请在输入框中输入 "Bearer <token>" (注意 Bearer 和 token 之间有空格)

func main() {
	// 1. 初始化 Logger
	// JSONHandler 方便日志采集，AddSource 显示文件名和行号
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("WishLedger 启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 2. Infra Initialization (自动建表)
	db, err := database.NewConnection(conf.Database.Driver, conf.Database.DSN)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	if conf.Server.Port != ":8080" { // 简单的判断，生产环境建议用配置字段
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer Wiring (依赖注入)
	// 密钥/有效期/加密成本都在这里一次性注入，业务层不碰全局配置
	hasher := service.NewPasswordHasher(conf.Auth.BcryptCost)
	tokens := service.NewTokenManager(conf.JWT.Secret, time.Duration(conf.JWT.ExpireMinutes)*time.Minute)

	userRepo := repository.NewUserRepository(db)
	wishRepo := repository.NewWishListRepo(db)
	celRepo := repository.NewCelebrationRepo(db)

	authSvc := service.NewAuthService(userRepo, hasher, tokens, conf.Auth.MinPasswordLen)

	authCtrl := controller.NewAuthController(authSvc)
	wishCtrl := controller.NewWishListController(wishRepo)
	celCtrl := controller.NewCelebrationController(celRepo)

	// 4. Server Start
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Cors())

	authMW := middleware.JWTAuth(tokens, userRepo)
	api.RegisterRoutes(r, authMW, authCtrl, wishCtrl, celCtrl, conf.Server.StaticDir)

	slog.Info("WishLedger Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
