package service

import (
	"context"
	"time"
)

// Cache 服务层依赖的缓存/锁/广播能力，由 pkg/redis 的 Client 实现，
// 测试中以内存假实现替换
type Cache interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DeleteKey(ctx context.Context, key string) error
	TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error)
	UnLock(ctx context.Context, key string, value interface{})
	AddToSet(ctx context.Context, key string, members ...string) error
	Publish(ctx context.Context, channel string, payload string) error
}
