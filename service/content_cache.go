package service

import (
	"context"
	"time"

	"github.com/techmaster-vietnam/portfolio/cache"
	"github.com/techmaster-vietnam/portfolio/core"
)

const (
	// InitialProjectsLimit là số project trong danh sách projects:initial
	InitialProjectsLimit = 6
	// InitialCertificatesLimit là số certificate trong danh sách certificates:initial
	InitialCertificatesLimit = 6
	// RecentBlogsLimit là số bài viết trong danh sách blogs:recent
	RecentBlogsLimit = 3
)

// ContentCache gom các phụ thuộc cache dùng chung cho content services:
// read path đọc/ghi qua Store với key dựng từ Keys, write path gọi Invalidator
type ContentCache struct {
	Store       core.CacheStore
	Keys        cache.Keys
	TTL         time.Duration
	Invalidator core.ContentInvalidator
	// Generation có thể nil; khi có, read path không ghi lại kết quả load đã cũ
	Generation *cache.Generation
}

// NewContentCache creates the shared cache dependencies; invalidator được dựng trên chính store
func NewContentCache(store core.CacheStore, keys cache.Keys, ttl time.Duration) *ContentCache {
	if store == nil {
		store = cache.NoopStore{}
	}
	invalidator := cache.NewInvalidator(store, keys)
	return &ContentCache{
		Store:       store,
		Keys:        keys,
		TTL:         ttl,
		Invalidator: invalidator,
		Generation:  invalidator.Generation(),
	}
}

// cached đọc qua cache khi cacheable, ngược lại gọi thẳng load
func cached[T any](ctx context.Context, cc *ContentCache, key string, cacheable bool, load func() (T, error)) (T, error) {
	if !cacheable {
		return load()
	}
	return cache.GetOrLoadGuarded(ctx, cc.Store, cc.Generation, key, cc.TTL, load)
}
