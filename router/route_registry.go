package router

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// RouteMetadata lưu thông tin route được khai báo trong code
type RouteMetadata struct {
	Method      string        `json:"method"`
	Path        string        `json:"-"`    // Relative path (để register vào router)
	FullPath    string        `json:"path"` // Full path pattern, ví dụ /api/projects/*
	Handler     fiber.Handler `json:"-"`
	Admin       bool          `json:"admin"`
	Description string        `json:"description"`
}

// RouteRegistry lưu các routes được đăng ký từ code, phục vụ GET /api/admin/routes
type RouteRegistry struct {
	routes []*RouteMetadata
	mutex  sync.RWMutex
}

// NewRouteRegistry tạo mới RouteRegistry
func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{routes: make([]*RouteMetadata, 0)}
}

// Register đăng ký một route vào registry
func (rr *RouteRegistry) Register(route *RouteMetadata) {
	rr.mutex.Lock()
	defer rr.mutex.Unlock()
	rr.routes = append(rr.routes, route)
}

// GetAllRoutes trả về tất cả routes đã đăng ký theo thứ tự khai báo
func (rr *RouteRegistry) GetAllRoutes() []*RouteMetadata {
	rr.mutex.RLock()
	defer rr.mutex.RUnlock()

	routes := make([]*RouteMetadata, len(rr.routes))
	copy(routes, rr.routes)
	return routes
}
