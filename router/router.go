package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/handlers"
)

// Handlers gom các handler cần đăng ký route
type Handlers struct {
	Project     *handlers.ProjectHandler
	Blog        *handlers.BlogHandler
	Certificate *handlers.CertificateHandler
	Experience  *handlers.ExperienceHandler
	Contact     *handlers.ContactHandler
	AdminAuth   *handlers.AdminAuthHandler
}

// SetupRoutes đăng ký public routes dưới /api và admin routes dưới /api/admin.
// Trả về registry để liệt kê routes (GET /api/admin/routes)
func SetupRoutes(app fiber.Router, h Handlers, guard AdminGuard) *RouteRegistry {
	registry := NewRouteRegistry()
	api := NewRouteGroup(app, registry, guard).Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	}).Public().Description("Health check").Register()

	// Projects: route tĩnh phải đăng ký trước /:slug
	projects := api.Group("/projects")
	projects.Get("/", h.Project.List).Public().Description("Danh sách project theo type, có phân trang").Register()
	projects.Get("/initial", h.Project.Initial).Public().Description("Project hiển thị ở trang chủ").Register()
	projects.Get("/types", h.Project.Types).Public().Description("Các type đang có project").Register()
	projects.Get("/:slug", h.Project.Get).Public().Description("Chi tiết project").Register()

	blogs := api.Group("/blogs")
	blogs.Get("/", h.Blog.List).Public().Description("Danh sách bài viết đã publish").Register()
	blogs.Get("/recent", h.Blog.Recent).Public().Description("Bài viết mới nhất").Register()
	blogs.Get("/:slug", h.Blog.Get).Public().Description("Chi tiết bài viết").Register()

	certificates := api.Group("/certificates")
	certificates.Get("/", h.Certificate.List).Public().Description("Danh sách certificate theo category, có phân trang").Register()
	certificates.Get("/initial", h.Certificate.Initial).Public().Description("Certificate hiển thị ở trang chủ").Register()

	experiences := api.Group("/experiences")
	experiences.Get("/", h.Experience.List).Public().Description("Danh sách kinh nghiệm làm việc").Register()
	experiences.Get("/:slug", h.Experience.Get).Public().Description("Chi tiết kinh nghiệm làm việc").Register()

	api.Post("/contact", h.Contact.Submit).Public().Description("Gửi form liên hệ").Register()

	admin := api.Group("/admin")
	admin.Post("/login", h.AdminAuth.Login).Public().Description("Đăng nhập admin").Register()
	admin.Post("/logout", h.AdminAuth.Logout).Public().Description("Đăng xuất admin").Register()
	admin.Get("/me", h.AdminAuth.Me).Admin().Description("Thông tin admin hiện tại").Register()
	admin.Get("/routes", listRoutes(registry)).Admin().Description("Danh sách routes đã đăng ký").Register()

	adminProjects := admin.Group("/projects")
	adminProjects.Post("/", h.Project.Create).Admin().Description("Tạo project").Register()
	adminProjects.Put("/:slug", h.Project.Update).Admin().Description("Cập nhật project").Register()
	adminProjects.Delete("/:slug", h.Project.Delete).Admin().Description("Xóa project").Register()

	adminBlogs := admin.Group("/blogs")
	adminBlogs.Get("/", h.Blog.AdminList).Admin().Description("Danh sách bài viết kể cả bản nháp").Register()
	adminBlogs.Get("/:slug", h.Blog.AdminGet).Admin().Description("Chi tiết bài viết kể cả bản nháp").Register()
	adminBlogs.Post("/", h.Blog.Create).Admin().Description("Tạo bài viết").Register()
	adminBlogs.Put("/:slug", h.Blog.Update).Admin().Description("Cập nhật bài viết").Register()
	adminBlogs.Delete("/:slug", h.Blog.Delete).Admin().Description("Xóa bài viết").Register()

	adminCertificates := admin.Group("/certificates")
	adminCertificates.Get("/:id", h.Certificate.Get).Admin().Description("Chi tiết certificate").Register()
	adminCertificates.Post("/", h.Certificate.Create).Admin().Description("Tạo certificate").Register()
	adminCertificates.Put("/:id", h.Certificate.Update).Admin().Description("Cập nhật certificate").Register()
	adminCertificates.Delete("/:id", h.Certificate.Delete).Admin().Description("Xóa certificate").Register()

	adminExperiences := admin.Group("/experiences")
	adminExperiences.Post("/", h.Experience.Create).Admin().Description("Tạo kinh nghiệm làm việc").Register()
	adminExperiences.Put("/:slug", h.Experience.Update).Admin().Description("Cập nhật kinh nghiệm làm việc").Register()
	adminExperiences.Delete("/:slug", h.Experience.Delete).Admin().Description("Xóa kinh nghiệm làm việc").Register()

	return registry
}

func listRoutes(registry *RouteRegistry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    registry.GetAllRoutes(),
		})
	}
}
