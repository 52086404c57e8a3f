package cache

import (
	"context"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/core"
)

// NewStore tạo cache store theo CACHE_DRIVER
func NewStore(cfg config.CacheConfig) (core.CacheStore, error) {
	switch cfg.Driver {
	case config.CacheDriverRedis:
		store := NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisTimeout)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, goerrorkit.WrapWithMessage(err, "Không kết nối được Redis").WithData(map[string]interface{}{
				"addr": cfg.RedisAddr,
				"db":   cfg.RedisDB,
			})
		}
		return store, nil
	case config.CacheDriverNone:
		return NoopStore{}, nil
	default:
		store, err := NewRistrettoStore(cfg.MaxCostMB << 20)
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Không khởi tạo được memory cache").WithData(map[string]interface{}{
				"max_cost_mb": cfg.MaxCostMB,
			})
		}
		return store, nil
	}
}
