// Package notifier chứa các implementation của core.NotificationSender cho form liên hệ
package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
)

// sendMailFunc có cùng chữ ký với smtp.SendMail, tests có thể thay thế
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender gửi form liên hệ tới chủ site qua SMTP
type SMTPSender struct {
	cfg      config.MailConfig
	sendMail sendMailFunc
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		cfg:      cfg,
		sendMail: smtp.SendMail,
	}
}

// SendContactMessage implement core.NotificationSender interface
func (s *SMTPSender) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.SMTPPassword != "" {
		username := s.cfg.SMTPUsername
		if username == "" {
			username = s.cfg.From
		}
		auth = smtp.PlainAuth("", username, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	if err := s.sendMail(addr, auth, s.cfg.From, []string{s.cfg.OwnerEmail}, buildContactMail(s.cfg.From, s.cfg.OwnerEmail, msg)); err != nil {
		return goerrorkit.WrapWithMessage(err, "Lỗi khi gửi email liên hệ").WithData(map[string]interface{}{
			"reference": msg.Reference,
			"smtp_host": s.cfg.SMTPHost,
		})
	}
	return nil
}

// buildContactMail dựng email plain text; Reply-To trỏ về người gửi form
func buildContactMail(from, to string, msg models.ContactMessage) []byte {
	subject := msg.Subject
	if subject == "" {
		subject = "Tin nhắn mới từ portfolio"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", headerValue(from))
	fmt.Fprintf(&b, "To: %s\r\n", headerValue(to))
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerValue(msg.Email))
	fmt.Fprintf(&b, "Subject: [Portfolio] %s\r\n", headerValue(subject))
	fmt.Fprintf(&b, "Date: %s\r\n", msg.ReceivedAt.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")

	fmt.Fprintf(&b, "Người gửi: %s <%s>\r\n", msg.Name, msg.Email)
	fmt.Fprintf(&b, "Mã tham chiếu: %s\r\n\r\n", msg.Reference)
	b.WriteString(strings.ReplaceAll(msg.Message, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// headerValue loại bỏ CR/LF để chặn header injection
func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

var _ core.NotificationSender = (*SMTPSender)(nil)
