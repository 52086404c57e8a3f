package notifier

import (
	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/core"
)

// New chọn sender theo cấu hình: SMTP nếu có SMTP_HOST, outbox file nếu có MAIL_OUTBOX_FILE,
// còn lại chỉ log ra console
func New(cfg config.MailConfig) core.NotificationSender {
	switch {
	case cfg.Enabled():
		return NewSMTPSender(cfg)
	case cfg.OutboxFile != "":
		return NewFileSender(cfg.OutboxFile)
	default:
		return NewLogSender(nil)
	}
}
