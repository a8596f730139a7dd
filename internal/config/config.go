// File: internal/config/config.go
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 服務設定，全部由環境變數載入
// REDIS_ADDR 為空時，session 僅存於行程內記憶體（重啟即失效）
type Config struct {
	// DatabaseURL PostgreSQL 連線字串
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Addr HTTP 監聽位址
	Addr string `env:"ADDR" envDefault:":8080"`

	// LogLevel zerolog 等級 (debug/info/warn/error)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SessionMaxAge session 最長存活時間，0 表示永不過期
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"0"`

	// Redis 共用 session 儲存設定，Addr 為空時停用
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Load 解析環境變數並回傳設定
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
