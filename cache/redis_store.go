package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTimeout = 500 * time.Millisecond

// RedisStore là cache dùng chung giữa nhiều instance, dựa trên Redis
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a Redis-backed store.
// Mỗi lệnh chạy đúng một lần (MaxRetries = -1) và bị giới hạn bởi timeout:
// Evict nằm trên write path nên lỗi phải trả về ngay để Invalidator log và đi tiếp
func NewRedisStore(addr, password string, db int, timeout time.Duration) *RedisStore {
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}
	return newRedisStoreWithOptions(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MaxRetries:   -1,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
}

func newRedisStoreWithOptions(opts *redis.Options) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(opts)}
}

// Ping kiểm tra kết nối tới Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Get retrieves a value; redis.Nil được coi là miss
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores a value with the given TTL (0 = không hết hạn)
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

// Evict deletes a key. DEL trên key không tồn tại trả về 0, không lỗi
func (s *RedisStore) Evict(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Close closes the client
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
