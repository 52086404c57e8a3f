package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// RistrettoStore là cache in-process dựa trên dgraph-io/ristretto
type RistrettoStore struct {
	c *ristretto.Cache[string, []byte]
}

// NewRistrettoStore creates a ristretto-backed store. maxCostBytes là tổng dung lượng
// tối đa (bytes) của các value được cache
func NewRistrettoStore(maxCostBytes int64) (*RistrettoStore, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxCostBytes / 100 * 10, // ~10x expected items
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoStore{c: c}, nil
}

// Get retrieves a value from the cache
func (s *RistrettoStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, found := s.c.Get(key)
	if !found {
		return nil, false, nil
	}
	return val, true, nil
}

// Set stores a value with the given TTL.
// Wait để value đọc được ngay sau khi Set trả về
func (s *RistrettoStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.c.SetWithTTL(key, value, int64(len(value)), ttl) {
		s.c.Wait()
	}
	return nil
}

// Evict removes a key; key không tồn tại là no-op
func (s *RistrettoStore) Evict(_ context.Context, key string) error {
	s.c.Del(key)
	return nil
}

// Close shuts down the cache and releases resources
func (s *RistrettoStore) Close() error {
	s.c.Close()
	return nil
}
