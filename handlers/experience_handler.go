package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/service"
)

// ExperienceHandler handles work experience endpoints
type ExperienceHandler struct {
	experienceService *service.ExperienceService
}

// NewExperienceHandler creates a new experience handler
func NewExperienceHandler(experienceService *service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// List handles list experiences request
// GET /api/experiences
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	experiences, err := h.experienceService.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    experiences,
	})
}

// Get handles get experience request
// GET /api/experiences/:slug
func (h *ExperienceHandler) Get(c *fiber.Ctx) error {
	experience, err := h.experienceService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    experience,
	})
}

// Create handles create experience request
// POST /api/admin/experiences
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var req service.ExperienceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	experience, err := h.experienceService.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    experience,
	})
}

// Update handles update experience request
// PUT /api/admin/experiences/:slug
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	var req service.ExperienceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	experience, err := h.experienceService.Update(c.UserContext(), c.Params("slug"), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    experience,
	})
}

// Delete handles delete experience request
// DELETE /api/admin/experiences/:slug
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	if err := h.experienceService.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa kinh nghiệm làm việc thành công",
	})
}
