package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/service"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles list projects request
// GET /api/projects?type=AI&page=1&per_page=6
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	page, err := h.projectService.List(c.UserContext(), c.Query("type"), c.QueryInt("page", 1), c.QueryInt("per_page", 0))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    page,
	})
}

// Initial handles landing-page projects request
// GET /api/projects/initial
func (h *ProjectHandler) Initial(c *fiber.Ctx) error {
	projects, err := h.projectService.Initial(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    projects,
	})
}

// Types handles project types request
// GET /api/projects/types
func (h *ProjectHandler) Types(c *fiber.Ctx) error {
	types, err := h.projectService.Types(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    types,
	})
}

// Get handles get project request
// GET /api/projects/:slug
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	project, err := h.projectService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    project,
	})
}

// Create handles create project request
// POST /api/admin/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var req service.ProjectRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    project,
	})
}

// Update handles update project request
// PUT /api/admin/projects/:slug
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var req service.ProjectRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.Update(c.UserContext(), c.Params("slug"), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    project,
	})
}

// Delete handles delete project request
// DELETE /api/admin/projects/:slug
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.projectService.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa project thành công",
	})
}
