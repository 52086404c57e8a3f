package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminGuard là middleware bảo vệ route admin
type AdminGuard interface {
	RequireAdmin() fiber.Handler
}

// RouteGroup wrapper cho fiber.Router với fluent API để khai báo route public/admin
type RouteGroup struct {
	router   fiber.Router
	registry *RouteRegistry
	guard    AdminGuard
	prefix   string // Prefix path của group (để build full path)
}

// NewRouteGroup tạo mới RouteGroup
func NewRouteGroup(router fiber.Router, registry *RouteRegistry, guard AdminGuard) *RouteGroup {
	return &RouteGroup{
		router:   router,
		registry: registry,
		guard:    guard,
	}
}

// Get tạo GET route với fluent API
func (g *RouteGroup) Get(path string, handler fiber.Handler) *RouteBuilder {
	return g.createRouteBuilder(fiber.MethodGet, path, handler)
}

// Post tạo POST route với fluent API
func (g *RouteGroup) Post(path string, handler fiber.Handler) *RouteBuilder {
	return g.createRouteBuilder(fiber.MethodPost, path, handler)
}

// Put tạo PUT route với fluent API
func (g *RouteGroup) Put(path string, handler fiber.Handler) *RouteBuilder {
	return g.createRouteBuilder(fiber.MethodPut, path, handler)
}

// Delete tạo DELETE route với fluent API
func (g *RouteGroup) Delete(path string, handler fiber.Handler) *RouteBuilder {
	return g.createRouteBuilder(fiber.MethodDelete, path, handler)
}

// Group tạo router group con
func (g *RouteGroup) Group(prefix string, handlers ...fiber.Handler) *RouteGroup {
	group := NewRouteGroup(g.router.Group(prefix, handlers...), g.registry, g.guard)
	group.prefix = joinPath(g.prefix, prefix)
	if group.prefix == "/" {
		group.prefix = ""
	}
	return group
}

// convertPathToPattern đổi path param thành wildcard
// Ví dụ: /api/projects/:slug -> /api/projects/*
func convertPathToPattern(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if strings.HasPrefix(part, ":") {
			parts[i] = "*"
		}
	}
	return strings.Join(parts, "/")
}

// joinPath nối prefix và path, bỏ dấu / thừa ở cuối (trừ root)
func joinPath(prefix, path string) string {
	full := strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
	full = "/" + strings.Trim(full, "/")
	return full
}

func (g *RouteGroup) createRouteBuilder(method, path string, handler fiber.Handler) *RouteBuilder {
	return &RouteBuilder{
		metadata: &RouteMetadata{
			Method:   method,
			Path:     path,
			FullPath: convertPathToPattern(joinPath(g.prefix, path)),
			Handler:  handler,
		},
		router:   g.router,
		registry: g.registry,
		guard:    g.guard,
	}
}
