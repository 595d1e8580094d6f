package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetWithExpiration 设置键值对并设置过期时间
func (s *Client) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值
func (s *Client) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// DeleteKey 删除一个键
func (s *Client) DeleteKey(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// TryLock 带重试的互斥锁
func (s *Client) TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i < retryTimes || retryTimes == -1; i++ {
		success, err := s.rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		time.Sleep(time.Millisecond * 200)
	}
	return false, nil
}

// UnLock 释放锁
func (s *Client) UnLock(ctx context.Context, key string, value interface{}) {
	s.rdb.Eval(ctx, "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end", []string{key}, value)
}

// AddToSet 向集合添加成员
func (s *Client) AddToSet(ctx context.Context, key string, members ...string) error {
	args := make([]interface{}, 0, len(members))
	for _, m := range members {
		args = append(args, m)
	}
	return s.rdb.SAdd(ctx, key, args...).Err()
}

// GetSet 获取集合
func (s *Client) GetSet(ctx context.Context, key string) ([]string, error) {
	value, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Rename 重命名键，键不存在时返回错误
func (s *Client) Rename(ctx context.Context, oldKey string, newKey string) error {
	return s.rdb.Rename(ctx, oldKey, newKey).Err()
}

// Publish 向频道发布消息
func (s *Client) Publish(ctx context.Context, channel string, payload string) error {
	return s.rdb.Publish(ctx, channel, payload).Err()
}

// Subscribe 订阅频道
func (s *Client) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return s.rdb.Subscribe(ctx, channels...)
}
