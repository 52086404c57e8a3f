package notifier

import (
	"context"
	"log"

	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
)

// LogSender chỉ log form liên hệ ra console, dùng khi chưa cấu hình SMTP
type LogSender struct {
	logger *log.Logger
}

// NewLogSender tạo mới LogSender. logger nil dùng log.Default()
func NewLogSender(logger *log.Logger) *LogSender {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSender{logger: logger}
}

// SendContactMessage implement core.NotificationSender interface
func (l *LogSender) SendContactMessage(_ context.Context, msg models.ContactMessage) error {
	l.logger.Printf("[LogSender] Tin nhắn liên hệ %s từ %s <%s>: %s", msg.Reference, msg.Name, msg.Email, msg.Subject)
	return nil
}

var _ core.NotificationSender = (*LogSender)(nil)
