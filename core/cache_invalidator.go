package core

import (
	"context"
	"time"

	"github.com/techmaster-vietnam/portfolio/models"
)

// CacheEvictor là primitive duy nhất mà invalidator cần từ cache store.
// Evict một key không tồn tại phải trả về nil
type CacheEvictor interface {
	Evict(ctx context.Context, key string) error
}

// CacheStore là key/value store dùng chung bởi read path (Get/Set) và invalidator (Evict)
type CacheStore interface {
	CacheEvictor
	// Get trả về (value, found, error); miss không phải là lỗi
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// ContentInvalidator định nghĩa interface để invalidate cache khi nội dung thay đổi
// Service layer gọi sau mỗi lần create/update/delete thành công, trước khi trả kết quả cho client.
// Với delete, truyền trạng thái cuối cùng của bản ghi trước khi xóa
type ContentInvalidator interface {
	OnProjectChanged(ctx context.Context, project *models.Project)
	OnBlogPostChanged(ctx context.Context, post *models.BlogPost)
	OnCertificateChanged(ctx context.Context, certificate *models.Certificate)
	OnExperienceChanged(ctx context.Context, experience *models.Experience)
}
