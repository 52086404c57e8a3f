package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/service"
)

// CertificateHandler handles certificate endpoints
type CertificateHandler struct {
	certificateService *service.CertificateService
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(certificateService *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

// List handles list certificates request
// GET /api/certificates?category=learning&page=1&per_page=6
func (h *CertificateHandler) List(c *fiber.Ctx) error {
	page, err := h.certificateService.List(c.UserContext(), c.Query("category"), c.QueryInt("page", 1), c.QueryInt("per_page", 0))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    page,
	})
}

// Initial handles landing-page certificates request
// GET /api/certificates/initial
func (h *CertificateHandler) Initial(c *fiber.Ctx) error {
	certificates, err := h.certificateService.Initial(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    certificates,
	})
}

// Get handles get certificate request
// GET /api/admin/certificates/:id
func (h *CertificateHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	certificate, err := h.certificateService.GetByID(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    certificate,
	})
}

// Create handles create certificate request
// POST /api/admin/certificates
func (h *CertificateHandler) Create(c *fiber.Ctx) error {
	var req service.CertificateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	certificate, err := h.certificateService.Create(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    certificate,
	})
}

// Update handles update certificate request
// PUT /api/admin/certificates/:id
func (h *CertificateHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req service.CertificateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	certificate, err := h.certificateService.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    certificate,
	})
}

// Delete handles delete certificate request
// DELETE /api/admin/certificates/:id
func (h *CertificateHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.certificateService.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Xóa certificate thành công",
	})
}
