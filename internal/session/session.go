// File: internal/session/session.go
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
)

// ErrNotFound 令牌不存在、已撤銷或已過期
var ErrNotFound = errors.New("session not found")

// Session 令牌對應的登入狀態
// CreatedAt 供上層的存活時間策略使用
type Session struct {
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Registry 管理 opaque token 與使用者的對應
// 實作需支援並行的 Issue/Resolve/Revoke
type Registry interface {
	Issue(ctx context.Context, userID int) (string, error)
	Resolve(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, token string) error
}

// 測試可覆寫此變數
var (
	randRead = rand.Read
	timeNow  = time.Now
)

// newToken 產生 256-bit 隨機令牌，base64 raw-URL 編碼（43 字元）
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
