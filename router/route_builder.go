package router

import (
	"github.com/gofiber/fiber/v2"
)

// RouteBuilder cung cấp fluent API để cấu hình route
type RouteBuilder struct {
	metadata *RouteMetadata
	router   fiber.Router
	registry *RouteRegistry
	guard    AdminGuard
}

// Public đánh dấu route là public (mặc định)
func (rb *RouteBuilder) Public() *RouteBuilder {
	rb.metadata.Admin = false
	return rb
}

// Admin đánh dấu route chỉ dành cho chủ site
func (rb *RouteBuilder) Admin() *RouteBuilder {
	rb.metadata.Admin = true
	return rb
}

// Description thêm mô tả cho route
func (rb *RouteBuilder) Description(desc string) *RouteBuilder {
	rb.metadata.Description = desc
	return rb
}

// Register hoàn tất việc đăng ký route và áp dụng middleware phù hợp
func (rb *RouteBuilder) Register() {
	rb.registry.Register(rb.metadata)

	if !rb.metadata.Admin {
		rb.router.Add(rb.metadata.Method, rb.metadata.Path, rb.metadata.Handler)
		return
	}
	rb.router.Add(rb.metadata.Method, rb.metadata.Path, rb.guard.RequireAdmin(), rb.metadata.Handler)
}
