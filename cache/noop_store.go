package cache

import (
	"context"
	"time"
)

// NoopStore tắt cache: mọi Get đều miss, Set và Evict không làm gì
type NoopStore struct{}

func (NoopStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NoopStore) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NoopStore) Evict(context.Context, string) error { return nil }

func (NoopStore) Close() error { return nil }
