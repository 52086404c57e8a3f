package service

import (
	"github.com/techmaster-vietnam/portfolio/cache"
)

// Page là kết quả phân trang trả về cho client và cũng là value được cache
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewPage builds a page result. Items nil được đổi thành slice rỗng để JSON trả về []
func NewPage[T any](items []T, total int64, page, perPage int) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// NormalizePage đưa page về >= 1
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NormalizePerPage chỉ chấp nhận các kích thước trang mà UI hỗ trợ.
// Giá trị khác được đổi về cache.DefaultPerPage để mọi trang <= MaxCachedPage đều nằm trong keyspace
func NormalizePerPage(perPage int) int {
	for _, option := range cache.PerPageOptions {
		if perPage == option {
			return perPage
		}
	}
	return cache.DefaultPerPage
}

// ClampLimit giới hạn limit cho các danh sách không cache (blog, admin)
func ClampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

func offsetOf(page, perPage int) int {
	return (page - 1) * perPage
}
