package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/middleware"
	"github.com/techmaster-vietnam/portfolio/service"
)

// AdminAuthHandler handles admin login/logout
type AdminAuthHandler struct {
	authService  *service.AdminAuthService
	cookieSecure bool
}

// NewAdminAuthHandler creates a new admin auth handler
func NewAdminAuthHandler(authService *service.AdminAuthService, cookieSecure bool) *AdminAuthHandler {
	return &AdminAuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// Login handles login request
// POST /api/admin/login
// Token được trả trong JSON và trong cookie HttpOnly cho admin UI
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    resp.Token,
		Expires:  resp.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: "Strict",
		Path:     "/api/admin",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resp,
	})
}

// Logout clears the token cookie
// POST /api/admin/logout
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: "Strict",
		Path:     "/api/admin",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Đăng xuất thành công",
	})
}

// Me returns the authenticated admin
// GET /api/admin/me
func (h *AdminAuthHandler) Me(c *fiber.Ctx) error {
	email, _ := middleware.GetAdminEmailFromContext(c)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"email": email,
		},
	})
}
