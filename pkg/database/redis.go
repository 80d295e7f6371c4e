package database

import (
	"context"
	"fmt"

	"fgblog/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 创建一个新的Redis客户端，未配置Host时返回nil
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
