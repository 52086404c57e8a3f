// Package portfolio lắp ráp toàn bộ ứng dụng: repositories, cache, services, handlers và routes
package portfolio

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/cache"
	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/handlers"
	"github.com/techmaster-vietnam/portfolio/middleware"
	"github.com/techmaster-vietnam/portfolio/notifier"
	"github.com/techmaster-vietnam/portfolio/repository"
	"github.com/techmaster-vietnam/portfolio/router"
	"github.com/techmaster-vietnam/portfolio/service"
	"gorm.io/gorm"
)

// Portfolio là main struct chứa tất cả dependencies
type Portfolio struct {
	DB     *gorm.DB
	Config *config.Config

	// Cache
	Store core.CacheStore
	Cache *service.ContentCache

	// Repositories
	ProjectRepo     *repository.ProjectRepository
	BlogPostRepo    *repository.BlogPostRepository
	CertificateRepo *repository.CertificateRepository
	ExperienceRepo  *repository.ExperienceRepository

	// Services
	ProjectService     *service.ProjectService
	BlogService        *service.BlogService
	CertificateService *service.CertificateService
	ExperienceService  *service.ExperienceService
	ContactService     *service.ContactService
	AdminAuthService   *service.AdminAuthService

	// Middleware
	AdminMiddleware *middleware.AdminMiddleware

	// Route registry
	RouteRegistry *router.RouteRegistry
}

// Builder là builder để tạo Portfolio
type Builder struct {
	app    fiber.Router
	db     *gorm.DB
	config *config.Config
	store  core.CacheStore
	sender core.NotificationSender
}

// New tạo mới Builder
func New(app fiber.Router, db *gorm.DB) *Builder {
	return &Builder{
		app: app,
		db:  db,
	}
}

// WithConfig set config cho builder
func (b *Builder) WithConfig(cfg *config.Config) *Builder {
	b.config = cfg
	return b
}

// WithCacheStore set cache store; mặc định dựng từ cfg.Cache
func (b *Builder) WithCacheStore(store core.CacheStore) *Builder {
	b.store = store
	return b
}

// WithNotificationSender set sender cho form liên hệ; mặc định chọn theo cfg.Mail
func (b *Builder) WithNotificationSender(sender core.NotificationSender) *Builder {
	b.sender = sender
	return b
}

// Initialize khởi tạo Portfolio với tất cả dependencies và đăng ký routes
func (b *Builder) Initialize() (*Portfolio, error) {
	if b.config == nil {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		b.config = cfg
	}
	cfg := b.config

	if b.store == nil {
		store, err := cache.NewStore(cfg.Cache)
		if err != nil {
			return nil, goerrorkit.WrapWithMessage(err, "Không khởi tạo được cache store").WithData(map[string]interface{}{
				"driver": cfg.Cache.Driver,
			})
		}
		b.store = store
	}
	if b.sender == nil {
		b.sender = notifier.New(cfg.Mail)
	}

	// Read path và invalidator dùng chung store và prefix
	contentCache := service.NewContentCache(b.store, cache.NewKeys(cfg.Cache.Prefix), cfg.Cache.TTL)

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(b.db)
	blogPostRepo := repository.NewBlogPostRepository(b.db)
	certificateRepo := repository.NewCertificateRepository(b.db)
	experienceRepo := repository.NewExperienceRepository(b.db)

	// Initialize services
	projectService := service.NewProjectService(projectRepo, contentCache)
	blogService := service.NewBlogService(blogPostRepo, contentCache)
	certificateService := service.NewCertificateService(certificateRepo, contentCache)
	experienceService := service.NewExperienceService(experienceRepo, contentCache)
	contactService := service.NewContactService(b.sender)
	adminAuthService := service.NewAdminAuthService(cfg.Admin)

	adminMiddleware := middleware.NewAdminMiddleware(cfg.Admin.JWTSecret, cfg.Admin.Email)

	registry := router.SetupRoutes(b.app, router.Handlers{
		Project:     handlers.NewProjectHandler(projectService),
		Blog:        handlers.NewBlogHandler(blogService),
		Certificate: handlers.NewCertificateHandler(certificateService),
		Experience:  handlers.NewExperienceHandler(experienceService),
		Contact:     handlers.NewContactHandler(contactService),
		AdminAuth:   handlers.NewAdminAuthHandler(adminAuthService, cfg.Server.CookieSecure),
	}, adminMiddleware)

	return &Portfolio{
		DB:                 b.db,
		Config:             cfg,
		Store:              b.store,
		Cache:              contentCache,
		ProjectRepo:        projectRepo,
		BlogPostRepo:       blogPostRepo,
		CertificateRepo:    certificateRepo,
		ExperienceRepo:     experienceRepo,
		ProjectService:     projectService,
		BlogService:        blogService,
		CertificateService: certificateService,
		ExperienceService:  experienceService,
		ContactService:     contactService,
		AdminAuthService:   adminAuthService,
		AdminMiddleware:    adminMiddleware,
		RouteRegistry:      registry,
	}, nil
}

// Close giải phóng cache store
func (p *Portfolio) Close() error {
	return p.Store.Close()
}
