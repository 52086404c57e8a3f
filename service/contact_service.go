package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
	"github.com/techmaster-vietnam/portfolio/utils"
)

const (
	maxContactNameLength    = 100
	maxContactSubjectLength = 200
	maxContactMessageLength = 5000
)

// ContactService chuyển tiếp form liên hệ tới chủ site
type ContactService struct {
	sender core.NotificationSender
	now    func() time.Time
}

// NewContactService creates a new contact service
func NewContactService(sender core.NotificationSender) *ContactService {
	return &ContactService{
		sender: sender,
		now:    time.Now,
	}
}

// ContactRequest represents the contact form payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	// Website là honeypot field, người dùng thật không nhìn thấy nên luôn để trống
	Website string `json:"website"`
}

// ContactResponse represents the contact form result
type ContactResponse struct {
	Reference string `json:"reference"`
}

// Submit validates the form and sends it to the site owner
func (s *ContactService) Submit(ctx context.Context, req ContactRequest) (*ContactResponse, error) {
	name := strings.TrimSpace(req.Name)
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)

	if err := firstError(
		utils.ValidateRequired("name", name, "Tên là bắt buộc"),
		utils.ValidateMaxLength("name", name, maxContactNameLength),
		utils.ValidateEmail(req.Email),
		utils.ValidateMaxLength("subject", subject, maxContactSubjectLength),
		utils.ValidateRequired("message", message, "Nội dung là bắt buộc"),
		utils.ValidateMaxLength("message", message, maxContactMessageLength),
	); err != nil {
		return nil, err
	}

	reference := uuid.New().String()

	// Bot điền honeypot: trả về như thành công nhưng không gửi mail
	if strings.TrimSpace(req.Website) != "" {
		return &ContactResponse{Reference: reference}, nil
	}

	msg := models.ContactMessage{
		Reference:  reference,
		Name:       name,
		Email:      strings.TrimSpace(req.Email),
		Subject:    subject,
		Message:    message,
		ReceivedAt: s.now(),
	}
	if err := s.sender.SendContactMessage(ctx, msg); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Không gửi được tin nhắn liên hệ").WithData(map[string]interface{}{
			"reference": reference,
		})
	}

	return &ContactResponse{Reference: reference}, nil
}
