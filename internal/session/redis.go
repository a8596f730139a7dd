// File: internal/session/redis.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alertboard/internal/cache"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// 測試可覆寫此變數
var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// RedisRegistry 共用的 session 儲存，供多實例部署使用
// maxAge > 0 時直接映射為 Redis TTL
type RedisRegistry struct {
	cache  cache.Cache
	maxAge time.Duration
}

func NewRedisRegistry(c cache.Cache, maxAge time.Duration) *RedisRegistry {
	return &RedisRegistry{cache: c, maxAge: maxAge}
}

func (r *RedisRegistry) Issue(ctx context.Context, userID int) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	payload, err := jsonMarshal(Session{UserID: userID, CreatedAt: timeNow().UTC()})
	if err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	if err := r.cache.Set(ctx, redisKeyPrefix+token, payload, r.maxAge).Err(); err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	return token, nil
}

func (r *RedisRegistry) Resolve(ctx context.Context, token string) (*Session, error) {
	val, err := r.cache.Get(ctx, redisKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("Resolve: %w", err)
	}
	s := &Session{}
	if err := jsonUnmarshal([]byte(val), s); err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}
	return s, nil
}

func (r *RedisRegistry) Revoke(ctx context.Context, token string) error {
	if err := r.cache.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("Revoke: %w", err)
	}
	return nil
}
