// File: internal/logger/logger.go
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New 建立 zerolog.Logger
// level 解析失敗時回退為 info
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
