package cache

import (
	"context"
	"fmt"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
)

// ErrorReporter nhận lỗi evict của từng key
type ErrorReporter func(err error, entity, key string)

var _ core.ContentInvalidator = (*Invalidator)(nil)

// Invalidator xóa mọi cache entry có thể chứa một bản ghi vừa được create/update/delete.
// Tập key chỉ phụ thuộc input; state duy nhất là Generation dùng cho read path.
// Lỗi evict được log và bỏ qua, không bao giờ làm fail thao tác ghi
type Invalidator struct {
	evictor    core.CacheEvictor
	keys       Keys
	report     ErrorReporter
	generation *Generation
}

// NewInvalidator creates a new invalidator over the given evictor
func NewInvalidator(evictor core.CacheEvictor, keys Keys) *Invalidator {
	if evictor == nil {
		evictor = NoopStore{}
	}
	return &Invalidator{
		evictor:    evictor,
		keys:       keys,
		report:     logEvictError,
		generation: &Generation{},
	}
}

// Generation trả về bộ đếm được tăng trước mỗi lượt evict
func (i *Invalidator) Generation() *Generation {
	return i.generation
}

// WithErrorReporter thay reporter mặc định (goerrorkit.LogError)
func (i *Invalidator) WithErrorReporter(report ErrorReporter) *Invalidator {
	if report != nil {
		i.report = report
	}
	return i
}

// OnProjectChanged evicts project lists, project types, the project detail and the full
// type/page/perPage sweep
func (i *Invalidator) OnProjectChanged(ctx context.Context, project *models.Project) {
	if project == nil {
		return
	}
	i.evictAll(ctx, "project", i.keys.ProjectKeys(project.Slug))
}

// OnBlogPostChanged evicts recent blogs and the post detail
func (i *Invalidator) OnBlogPostChanged(ctx context.Context, post *models.BlogPost) {
	if post == nil {
		return
	}
	i.evictAll(ctx, "blog_post", i.keys.BlogPostKeys(post.Slug))
}

// OnCertificateChanged evicts the initial list and the full category/page/perPage sweep.
// Category của certificate không ảnh hưởng tập key
func (i *Invalidator) OnCertificateChanged(ctx context.Context, certificate *models.Certificate) {
	if certificate == nil {
		return
	}
	i.evictAll(ctx, "certificate", i.keys.CertificateKeys())
}

// OnExperienceChanged evicts the experience list and the experience detail
func (i *Invalidator) OnExperienceChanged(ctx context.Context, experience *models.Experience) {
	if experience == nil {
		return
	}
	i.evictAll(ctx, "experience", i.keys.ExperienceKeys(experience.Slug))
}

// evictAll evicts từng key độc lập; lỗi ở một key không dừng vòng lặp
func (i *Invalidator) evictAll(ctx context.Context, entity string, keys []string) {
	i.generation.Advance()
	for _, key := range keys {
		if err := i.evict(ctx, key); err != nil {
			i.report(err, entity, key)
		}
	}
}

func (i *Invalidator) evict(ctx context.Context, key string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evict panicked: %v", r)
		}
	}()
	return i.evictor.Evict(ctx, key)
}

func logEvictError(err error, entity, key string) {
	goerrorkit.LogError(goerrorkit.WrapWithMessage(err, "Lỗi khi xóa cache key").WithData(map[string]interface{}{
		"entity": entity,
		"key":    key,
	}), "Invalidator.evict")
}
