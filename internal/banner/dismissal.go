package banner

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DismissedKey 记录访客最后关闭的横幅所用的键名
const DismissedKey = "fg_announcement_dismissed"

// KeyValue 单值读写能力
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Dismissals 按访客保存最后关闭的横幅ID
type Dismissals struct {
	kv KeyValue
}

// NewDismissals 创建关闭记录存储
func NewDismissals(kv KeyValue) *Dismissals {
	return &Dismissals{kv: kv}
}

func (d *Dismissals) key(visitorID string) string {
	return fmt.Sprintf("%s:%s", DismissedKey, visitorID)
}

// Get 返回访客最后关闭的横幅ID，没有记录时返回空字符串
func (d *Dismissals) Get(ctx context.Context, visitorID string) (string, error) {
	id, ok, err := d.kv.Get(ctx, d.key(visitorID))
	if err != nil || !ok {
		return "", err
	}
	return id, nil
}

// Dismiss 记录访客关闭了横幅 id，覆盖之前的记录
func (d *Dismissals) Dismiss(ctx context.Context, visitorID, id string) error {
	return d.kv.Set(ctx, d.key(visitorID), id)
}

// MemoryStore 进程内的 KeyValue 实现
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get 实现 KeyValue
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set 实现 KeyValue
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// RedisStore 基于Redis的 KeyValue 实现，键不过期
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建Redis存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get 实现 KeyValue
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set 实现 KeyValue
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
