package service

import (
	"context"
	"encoding/json"
	"time"

	"fgblog/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// cache 基于Redis的旁路缓存，client 为 nil 时所有操作都是空操作
type cache struct {
	client *redis.Client
	logger *logger.Logger
}

// get 命中时把缓存内容解码到 dst 并返回 true
func (c cache) get(ctx context.Context, key string, dst interface{}) bool {
	if c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (c cache) set(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		c.logger.Warn("写入缓存失败", "key", key, "error", err)
	}
}

// invalidate 删除匹配 pattern 的所有缓存键
func (c cache) invalidate(ctx context.Context, pattern string) {
	if c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Error("删除缓存失败", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Error("扫描缓存失败", "pattern", pattern, "error", err)
	}
}
