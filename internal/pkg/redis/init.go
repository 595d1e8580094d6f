package redis

import (
	"ReflectAI/internal/api/config"
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// Client 对 go-redis 的薄封装，显式构造后注入各服务，便于测试替换
type Client struct {
	rdb *redis.Client
}

// InitRedis 初始化 Redis 客户端连接
func InitRedis(cfg config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})

	ctx := context.Background()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}

// Raw 获取底层 redis 客户端
func (s *Client) Raw() *redis.Client {
	return s.rdb
}
