package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/portfolio/service"
)

// ContactHandler handles the contact form endpoint
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles contact form submission
// POST /api/contact
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req service.ContactRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.contactService.Submit(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success": true,
		"data":    resp,
		"message": "Đã gửi tin nhắn",
	})
}
