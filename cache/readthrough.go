package cache

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/core"
)

// readErrorReporter log lỗi cache ở read path; tests có thể thay thế
var readErrorReporter = func(err error, op, key string) {
	goerrorkit.LogError(goerrorkit.WrapWithMessage(err, "Lỗi cache ở read path").WithData(map[string]interface{}{
		"op":  op,
		"key": key,
	}), "cache.GetOrLoad")
}

// Generation đếm số lần invalidation trong process.
// Read path ghi nhận giá trị trước khi load và bỏ qua Set nếu giá trị đã đổi,
// để một lần load bắt đầu trước write không ghi lại dữ liệu cũ sau khi key đã bị evict
type Generation struct {
	n atomic.Uint64
}

// Current returns the current generation
func (g *Generation) Current() uint64 {
	return g.n.Load()
}

// Advance đánh dấu một invalidation mới
func (g *Generation) Advance() {
	g.n.Add(1)
}

// GetOrLoad đọc key từ store; nếu miss thì gọi load, ghi kết quả (JSON) vào store và trả về.
// Lỗi của cache chỉ được log, read path vẫn trả dữ liệu từ load.
// Lỗi của load được trả nguyên vẹn và không ghi gì vào cache
func GetOrLoad[T any](ctx context.Context, store core.CacheStore, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	return GetOrLoadGuarded(ctx, store, nil, key, ttl, load)
}

// GetOrLoadGuarded giống GetOrLoad nhưng không ghi vào store nếu gen đã thay đổi trong lúc load.
// gen nil tương đương GetOrLoad
func GetOrLoadGuarded[T any](ctx context.Context, store core.CacheStore, gen *Generation, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var startGen uint64
	if gen != nil {
		startGen = gen.Current()
	}

	raw, found, err := store.Get(ctx, key)
	if err != nil {
		readErrorReporter(err, "get", key)
	} else if found {
		var cached T
		decodeErr := json.Unmarshal(raw, &cached)
		if decodeErr == nil {
			return cached, nil
		}
		readErrorReporter(decodeErr, "decode", key)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if gen != nil && gen.Current() != startGen {
		return value, nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		readErrorReporter(err, "encode", key)
		return value, nil
	}
	if err := store.Set(ctx, key, encoded, ttl); err != nil {
		readErrorReporter(err, "set", key)
	}
	return value, nil
}
