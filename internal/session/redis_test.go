// File: internal/session/redis_test.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"alertboard/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func restoreJSONGlobals() {
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
}

func TestRedisRegistryIssue(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Cleanup(restoreJSONGlobals)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return base }

	var gotKey string
	var gotTTL time.Duration
	var gotVal []byte
	c := &cache.FakeCache{
		SetFn: func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
			gotKey = key
			gotTTL = ttl
			gotVal = val.([]byte)
			return redis.NewStatusResult("OK", nil)
		},
	}

	r := NewRedisRegistry(c, time.Hour)
	tok, err := r.Issue(ctx, 9)
	require.NoError(t, err)
	require.Len(t, tok, 43)
	require.Equal(t, redisKeyPrefix+tok, gotKey)
	require.Equal(t, time.Hour, gotTTL)

	var s Session
	require.NoError(t, json.Unmarshal(gotVal, &s))
	require.Equal(t, 9, s.UserID)
	require.Equal(t, base, s.CreatedAt)

	// rand 失敗
	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	_, err = r.Issue(ctx, 9)
	require.Error(t, err)
	restoreGlobals()

	// marshal 失敗
	jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("marshal") }
	_, err = r.Issue(ctx, 9)
	require.Error(t, err)
	restoreJSONGlobals()

	// 快取寫入失敗
	c.SetFn = func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("set"))
	}
	_, err = r.Issue(ctx, 9)
	require.Error(t, err)
}

func TestRedisRegistryResolve(t *testing.T) {
	t.Cleanup(restoreJSONGlobals)
	ctx := context.Background()

	c := &cache.FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
	}
	r := NewRedisRegistry(c, 0)

	// 不存在（或 TTL 已到期）
	_, err := r.Resolve(ctx, "tok")
	require.ErrorIs(t, err, ErrNotFound)

	// 快取讀取失敗
	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", errors.New("get"))
	}
	_, err = r.Resolve(ctx, "tok")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)

	// 壞資料
	c.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("{", nil)
	}
	_, err = r.Resolve(ctx, "tok")
	require.Error(t, err)

	// 正常往返
	payload, _ := json.Marshal(Session{UserID: 4, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	c.GetFn = func(_ context.Context, key string) *redis.StringCmd {
		require.Equal(t, redisKeyPrefix+"tok", key)
		return redis.NewStringResult(string(payload), nil)
	}
	s, err := r.Resolve(ctx, "tok")
	require.NoError(t, err)
	require.Equal(t, 4, s.UserID)
}

func TestRedisRegistryRevoke(t *testing.T) {
	ctx := context.Background()

	var gotKeys []string
	c := &cache.FakeCache{
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			gotKeys = keys
			return redis.NewIntResult(1, nil)
		},
	}
	r := NewRedisRegistry(c, 0)
	require.NoError(t, r.Revoke(ctx, "tok"))
	require.Equal(t, []string{redisKeyPrefix + "tok"}, gotKeys)

	c.DelFn = func(context.Context, ...string) *redis.IntCmd {
		return redis.NewIntResult(0, errors.New("del"))
	}
	require.Error(t, r.Revoke(ctx, "tok"))
}
