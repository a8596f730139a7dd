// File: internal/session/memory.go
package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRegistry 行程內的 session 儲存
// 狀態不會跨行程共享，服務重啟後所有 session 即失效
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Session
	maxAge   time.Duration
}

// NewMemoryRegistry 建立記憶體 registry
// maxAge <= 0 表示令牌永不過期
func NewMemoryRegistry(maxAge time.Duration) *MemoryRegistry {
	return &MemoryRegistry{
		sessions: make(map[string]Session),
		maxAge:   maxAge,
	}
}

func (r *MemoryRegistry) expired(s Session, now time.Time) bool {
	return r.maxAge > 0 && now.Sub(s.CreatedAt) > r.maxAge
}

func (r *MemoryRegistry) Issue(_ context.Context, userID int) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.sessions[token] = Session{UserID: userID, CreatedAt: timeNow()}
	r.mu.Unlock()
	return token, nil
}

func (r *MemoryRegistry) Resolve(_ context.Context, token string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok || r.expired(s, timeNow()) {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemoryRegistry) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
	return nil
}

// Sweep 移除所有過期 session，回傳移除數量
// 過期檢查在 Resolve 已涵蓋，Sweep 僅負責回收記憶體
func (r *MemoryRegistry) Sweep() int {
	if r.maxAge <= 0 {
		return 0
	}
	now := timeNow()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for token, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}
