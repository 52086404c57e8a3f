package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/service"
)

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List handles list published posts request
// GET /api/blogs?project_id=1&page=1&limit=10
func (h *BlogHandler) List(c *fiber.Ctx) error {
	filter, err := blogListFilter(c)
	if err != nil {
		return err
	}

	page, err := h.blogService.List(filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    page,
	})
}

// Recent handles recent posts request
// GET /api/blogs/recent
func (h *BlogHandler) Recent(c *fiber.Ctx) error {
	posts, err := h.blogService.Recent(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    posts,
	})
}

// Get handles get published post request
// GET /api/blogs/:slug
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	post, err := h.blogService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    post,
	})
}

// AdminList handles list posts request including drafts
// GET /api/admin/blogs
func (h *BlogHandler) AdminList(c *fiber.Ctx) error {
	filter, err := blogListFilter(c)
	if err != nil {
		return err
	}

	page, err := h.blogService.AdminList(filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    page,
	})
}

// AdminGet handles get post request including drafts
// GET /api/admin/blogs/:slug
func (h *BlogHandler) AdminGet(c *fiber.Ctx) error {
	post, err := h.blogService.AdminGet(c.Params("slug"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    post,
	})
}

// Create handles create post request
// POST /api/admin/blogs
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req service.BlogPostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	post, err := h.blogService.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    post,
	})
}

// Update handles update post request
// PUT /api/admin/blogs/:slug
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	var req service.BlogPostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	post, err := h.blogService.Update(c.UserContext(), c.Params("slug"), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    post,
	})
}

// Delete handles delete post request
// DELETE /api/admin/blogs/:slug
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	if err := h.blogService.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa bài viết thành công",
	})
}

func blogListFilter(c *fiber.Ctx) (service.BlogListFilter, error) {
	projectID, err := parseOptionalID(c, "project_id")
	if err != nil {
		return service.BlogListFilter{}, err
	}
	return service.BlogListFilter{
		ProjectID: projectID,
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 0),
	}, nil
}
