package notifier

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/smtp"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/techmaster-vietnam/portfolio/config"
	"github.com/techmaster-vietnam/portfolio/models"
)

func sampleMessage() models.ContactMessage {
	return models.ContactMessage{
		Reference:  "ref-1",
		Name:       "Minh",
		Email:      "minh@example.com",
		Subject:    "Hello\r\nBcc: victim@example.com",
		Message:    "Dòng 1\nDòng 2",
		ReceivedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSMTPSender_SendContactMessage(t *testing.T) {
	cfg := config.MailConfig{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUsername: "user",
		SMTPPassword: "pass",
		From:         "no-reply@example.com",
		OwnerEmail:   "owner@example.com",
	}
	sender := NewSMTPSender(cfg)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	sender.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
		return nil
	}

	if err := sender.SendContactMessage(context.Background(), sampleMessage()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("Expected addr smtp.example.com:587, got %q", gotAddr)
	}
	if gotAuth == nil {
		t.Errorf("Expected PLAIN auth when password is set")
	}
	if gotFrom != cfg.From || len(gotTo) != 1 || gotTo[0] != cfg.OwnerEmail {
		t.Errorf("Unexpected envelope: from %q to %v", gotFrom, gotTo)
	}

	body := string(gotMsg)
	if !strings.Contains(body, "Reply-To: minh@example.com\r\n") {
		t.Errorf("Expected Reply-To header, got:\n%s", body)
	}
	if strings.Contains(body, "\r\nBcc:") {
		t.Errorf("Expected CR/LF in subject to be stripped, got:\n%s", body)
	}
	if !strings.Contains(body, "Dòng 1\r\nDòng 2") {
		t.Errorf("Expected CRLF line endings in body, got:\n%s", body)
	}
}

func TestSMTPSender_SendError(t *testing.T) {
	sender := NewSMTPSender(config.MailConfig{SMTPHost: "smtp.example.com", SMTPPort: 25})
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	if err := sender.SendContactMessage(context.Background(), sampleMessage()); err == nil {
		t.Fatalf("Expected error, got nil")
	}
}

func TestSMTPSender_CancelledContext(t *testing.T) {
	sender := NewSMTPSender(config.MailConfig{SMTPHost: "smtp.example.com"})
	called := false
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sender.SendContactMessage(ctx, sampleMessage()); err == nil {
		t.Errorf("Expected context error, got nil")
	}
	if called {
		t.Errorf("Expected no SMTP call after cancellation")
	}
}

func TestFileSender_AppendsMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outbox", "contact.json")
	sender := NewFileSender(path)

	for i := 0; i < 2; i++ {
		if err := sender.SendContactMessage(context.Background(), sampleMessage()); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	messages, err := sender.Messages()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[0].Reference != "ref-1" {
		t.Errorf("Expected reference ref-1, got %q", messages[0].Reference)
	}
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(log.New(&buf, "", 0))

	if err := sender.SendContactMessage(context.Background(), sampleMessage()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "ref-1") {
		t.Errorf("Expected log to contain reference, got %q", buf.String())
	}
}

func TestNew_SelectsSender(t *testing.T) {
	if _, ok := New(config.MailConfig{SMTPHost: "smtp.example.com"}).(*SMTPSender); !ok {
		t.Errorf("Expected SMTPSender when SMTP_HOST is set")
	}
	if _, ok := New(config.MailConfig{OutboxFile: "out.json"}).(*FileSender); !ok {
		t.Errorf("Expected FileSender when MAIL_OUTBOX_FILE is set")
	}
	if _, ok := New(config.MailConfig{}).(*LogSender); !ok {
		t.Errorf("Expected LogSender by default")
	}
}
