// File: cmd/service/main.go
// @title        Alertboard API
// @version      1.0
// @description  使用者註冊登入與個人警報管理的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"time"

	"alertboard/internal/cache"
	"alertboard/internal/config"
	"alertboard/internal/database"
	"alertboard/internal/logger"
	appmw "alertboard/internal/middleware"
	"alertboard/internal/router"
	"alertboard/internal/session"
	"alertboard/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "alertboard/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// sweepInterval 記憶體 session 的背景清理週期
const sweepInterval = time.Minute

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定載入失敗: %v", err)
	}

	l := logger.New(cfg.LogLevel)

	// 執行遷移
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migration 執行失敗: %v", err)
	}

	// 建立資料庫連線池
	db, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	// Session registry：設定 Redis 時使用共用儲存，否則存於行程內記憶體
	// 記憶體模式下 session 不會跨實例共享，服務重啟即失效
	var sessions session.Registry
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Redis 連線失敗: %v", err)
		}
		defer func() {
			if err := c.Close(); err != nil {
				l.Warn().Err(err).Msg("close redis failed")
			}
		}()
		sessions = session.NewRedisRegistry(c, cfg.SessionMaxAge)
		l.Info().Msg("using redis session registry")
	} else {
		mem := session.NewMemoryRegistry(cfg.SessionMaxAge)
		sessions = mem
		l.Info().Msg("using in-memory session registry; sessions do not survive restarts")

		// 背景清理過期 session，不佔用請求路徑
		pool := worker.NewPool(1)
		defer pool.Stop()
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		go func() {
			for range ticker.C {
				pool.Submit(func() { mem.Sweep() })
			}
		}()
	}

	// Echo 實例及中介層
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger(l))

	// 註冊路由並注入依賴
	router.Setup(e, db, sessions)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// 啟動服務
	e.Logger.Fatal(e.Start(cfg.Addr))
}
