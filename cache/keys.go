// Package cache chứa keyspace của read-path cache, Invalidator và các cache store.
//
// Keyspace là hợp đồng chung giữa read path và Invalidator: read path chỉ được ghi
// vào các key dựng từ Keys, và Invalidator xóa đúng các key đó khi nội dung thay đổi.
// Khi thay đổi bộ lọc hoặc phân trang trên UI, phải cập nhật các hằng số ở đây.
package cache

import (
	"fmt"

	"github.com/techmaster-vietnam/portfolio/models"
)

// FilterAll là giá trị bộ lọc "không lọc" cho cả project type lẫn certificate category
const FilterAll = "all"

const (
	// MaxCachedPage là trang lớn nhất được cache; trang 6+ luôn đọc thẳng từ database
	MaxCachedPage = 5
	// DefaultPerPage dùng khi client không gửi per_page hợp lệ
	DefaultPerPage = 6
)

// PerPageOptions là các kích thước trang mà UI cho phép chọn
var PerPageOptions = []int{6, 9, 12}

// ProjectTypeFilters trả về các giá trị bộ lọc type được cache: "all" và mọi type đã biết
func ProjectTypeFilters() []string {
	filters := make([]string, 0, len(models.AllProjectTypes)+1)
	filters = append(filters, FilterAll)
	for _, t := range models.AllProjectTypes {
		filters = append(filters, string(t))
	}
	return filters
}

// CertificateCategoryFilters trả về các giá trị bộ lọc category được cache
func CertificateCategoryFilters() []string {
	filters := make([]string, 0, len(models.AllCertificateCategories)+1)
	filters = append(filters, FilterAll)
	for _, c := range models.AllCertificateCategories {
		filters = append(filters, string(c))
	}
	return filters
}

// IsCacheablePage reports whether a page/perPage combination belongs to the cached keyspace
func IsCacheablePage(page, perPage int) bool {
	if page < 1 || page > MaxCachedPage {
		return false
	}
	for _, option := range PerPageOptions {
		if perPage == option {
			return true
		}
	}
	return false
}

// Keys dựng cache key với namespace prefix chung
type Keys struct {
	prefix string
}

// NewKeys creates a key builder. prefix có thể rỗng
func NewKeys(prefix string) Keys {
	return Keys{prefix: prefix}
}

// Prefix returns the namespace prefix
func (k Keys) Prefix() string {
	return k.prefix
}

func (k Keys) key(name string) string {
	return k.prefix + name
}

// ProjectsInitial là danh sách project hiển thị ở trang chủ
func (k Keys) ProjectsInitial() string {
	return k.key("projects:initial")
}

// ProjectTypes là danh sách các type đang có project
func (k Keys) ProjectTypes() string {
	return k.key("project_types")
}

// ProjectDetail là chi tiết một project theo slug
func (k Keys) ProjectDetail(slug string) string {
	return k.key("project:" + slug)
}

// ProjectsPage là một trang danh sách project theo type
func (k Keys) ProjectsPage(projectType string, page, perPage int) string {
	return k.key(fmt.Sprintf("projects:type_%s:page_%d:per_%d", projectType, page, perPage))
}

// BlogsRecent là danh sách bài viết mới nhất
func (k Keys) BlogsRecent() string {
	return k.key("blogs:recent")
}

// BlogDetail là chi tiết một bài viết theo slug
func (k Keys) BlogDetail(slug string) string {
	return k.key("blog:" + slug)
}

// CertificatesInitial là danh sách certificate hiển thị ở trang chủ
func (k Keys) CertificatesInitial() string {
	return k.key("certificates:initial")
}

// CertificatesPage là một trang danh sách certificate theo category
func (k Keys) CertificatesPage(category string, page, perPage int) string {
	return k.key(fmt.Sprintf("certs:cat_%s:page_%d:per_%d", category, page, perPage))
}

// Experiences là toàn bộ danh sách kinh nghiệm làm việc
func (k Keys) Experiences() string {
	return k.key("experiences")
}

// ExperienceDetail là chi tiết một kinh nghiệm theo slug
func (k Keys) ExperienceDetail(slug string) string {
	return k.key("experience:" + slug)
}

// ProjectKeys returns every key that may hold data of the project with the given slug.
// Sweep toàn bộ type x page x perPage, không phụ thuộc type hiện tại của project.
// Kích thước sweep = len(ProjectTypeFilters()) x MaxCachedPage x len(PerPageOptions), hiện là 75 key trang + 3
func (k Keys) ProjectKeys(slug string) []string {
	keys := []string{k.ProjectsInitial(), k.ProjectTypes()}
	if slug != "" {
		keys = append(keys, k.ProjectDetail(slug))
	}
	for _, projectType := range ProjectTypeFilters() {
		for page := 1; page <= MaxCachedPage; page++ {
			for _, perPage := range PerPageOptions {
				keys = append(keys, k.ProjectsPage(projectType, page, perPage))
			}
		}
	}
	return keys
}

// BlogPostKeys returns every key that may hold data of the blog post with the given slug
func (k Keys) BlogPostKeys(slug string) []string {
	keys := []string{k.BlogsRecent()}
	if slug != "" {
		keys = append(keys, k.BlogDetail(slug))
	}
	return keys
}

// CertificateKeys returns every key that may hold certificate data
func (k Keys) CertificateKeys() []string {
	keys := []string{k.CertificatesInitial()}
	for _, category := range CertificateCategoryFilters() {
		for page := 1; page <= MaxCachedPage; page++ {
			for _, perPage := range PerPageOptions {
				keys = append(keys, k.CertificatesPage(category, page, perPage))
			}
		}
	}
	return keys
}

// ExperienceKeys returns every key that may hold data of the experience with the given slug
func (k Keys) ExperienceKeys(slug string) []string {
	keys := []string{k.Experiences()}
	if slug != "" {
		keys = append(keys, k.ExperienceDetail(slug))
	}
	return keys
}
