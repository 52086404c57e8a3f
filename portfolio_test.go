package portfolio

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/cache"
	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/models"
	"github.com/techmaster-vietnam/portfolio/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingSender struct {
	sent []models.ContactMessage
}

func (r *recordingSender) SendContactMessage(_ context.Context, msg models.ContactMessage) error {
	r.sent = append(r.sent, msg)
	return nil
}

func newTestPortfolio(t *testing.T) (*fiber.App, *Portfolio, *recordingSender) {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("Failed to open dry-run DB: %v", err)
	}

	hash, err := utils.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("Expected no error hashing password, got %v", err)
	}
	cfg := &config.Config{
		Cache: config.CacheConfig{Driver: config.CacheDriverNone, Prefix: "portfolio:", TTL: time.Minute},
		Admin: config.AdminConfig{
			Email:        "owner@example.com",
			PasswordHash: hash,
			JWTSecret:    "test-secret",
			JWTExpiry:    time.Hour,
		},
	}

	sender := &recordingSender{}
	app := fiber.New()
	p, err := New(app, db).
		WithConfig(cfg).
		WithCacheStore(cache.NoopStore{}).
		WithNotificationSender(sender).
		Initialize()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return app, p, sender
}

func TestInitialize_RegistersRoutes(t *testing.T) {
	_, p, _ := newTestPortfolio(t)

	if len(p.RouteRegistry.GetAllRoutes()) == 0 {
		t.Fatalf("Expected routes to be registered")
	}
	if p.Cache.Keys.Prefix() != "portfolio:" {
		t.Errorf("Expected cache prefix 'portfolio:', got %q", p.Cache.Keys.Prefix())
	}
}

func TestPublicRoutes(t *testing.T) {
	app, _, _ := newTestPortfolio(t)

	tests := []struct {
		name         string
		path         string
		expectStatus int
	}{
		{name: "projects", path: "/api/projects?type=AI&page=1&per_page=9", expectStatus: fiber.StatusOK},
		{name: "projects beyond cached pages", path: "/api/projects?page=8", expectStatus: fiber.StatusOK},
		{name: "certificates", path: "/api/certificates?category=learning", expectStatus: fiber.StatusOK},
		{name: "experiences", path: "/api/experiences", expectStatus: fiber.StatusOK},
		{name: "recent blogs", path: "/api/blogs/recent", expectStatus: fiber.StatusOK},
		{name: "unknown project type", path: "/api/projects?type=Game"},
		{name: "unknown certificate category", path: "/api/certificates?category=hackathon"},
		{name: "invalid project id filter", path: "/api/blogs?project_id=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if tt.expectStatus != 0 && resp.StatusCode != tt.expectStatus {
				t.Errorf("Expected status %d, got %d", tt.expectStatus, resp.StatusCode)
			}
			if tt.expectStatus == 0 && resp.StatusCode == fiber.StatusOK {
				t.Errorf("Expected request to fail, got status 200")
			}
		})
	}
}

func TestAdminLoginFlow(t *testing.T) {
	app, _, _ := newTestPortfolio(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/me", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode == fiber.StatusOK {
		t.Fatalf("Expected /api/admin/me to require a token")
	}

	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"email":"owner@example.com","password":"s3cret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected login to succeed, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Data.Token == "" {
		t.Fatalf("Expected token in response, got %s", body)
	}

	req = httptest.NewRequest("GET", "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Data.Token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Expected token to grant access, got %d", resp.StatusCode)
	}
}

func TestAdminWriteRoutesRequireToken(t *testing.T) {
	app, _, _ := newTestPortfolio(t)

	for _, tt := range []struct{ method, path string }{
		{"POST", "/api/admin/projects"},
		{"PUT", "/api/admin/blogs/post"},
		{"DELETE", "/api/admin/certificates/1"},
		{"DELETE", "/api/admin/experiences/acme-dev"},
	} {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.StatusCode == fiber.StatusOK || resp.StatusCode == fiber.StatusCreated {
			t.Errorf("Expected %s %s to be rejected without token, got %d", tt.method, tt.path, resp.StatusCode)
		}
	}
}

func TestContactRoute(t *testing.T) {
	app, _, sender := newTestPortfolio(t)

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"Minh","email":"minh@example.com","message":"Xin chào"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode != fiber.StatusAccepted {
		t.Errorf("Expected status 202, got %d", resp.StatusCode)
	}
	if len(sender.sent) != 1 {
		t.Errorf("Expected 1 message sent, got %d", len(sender.sent))
	}

	req = httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"name":"Minh","email":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.StatusCode == fiber.StatusAccepted {
		t.Errorf("Expected invalid contact form to be rejected")
	}
}
