package notifier

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/core"
	"github.com/techmaster-vietnam/portfolio/models"
)

// FileSender lưu form liên hệ vào file JSON (outbox) cho môi trường development/test
type FileSender struct {
	filePath string
	mu       sync.Mutex
}

// NewFileSender tạo mới FileSender
// filePath: đường dẫn file JSON (mặc định: "tmp/contact_outbox.json")
func NewFileSender(filePath string) *FileSender {
	if filePath == "" {
		filePath = "tmp/contact_outbox.json"
	}
	return &FileSender{filePath: filePath}
}

// SendContactMessage implement core.NotificationSender interface
// Tin nhắn được nối vào cuối danh sách trong file
func (f *FileSender) SendContactMessage(_ context.Context, msg models.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.filePath), 0755); err != nil {
		return goerrorkit.WrapWithMessage(err, "lỗi khi tạo thư mục")
	}

	messages, err := f.read()
	if err != nil {
		return err
	}
	messages = append(messages, msg)

	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return goerrorkit.WrapWithMessage(err, "lỗi khi encode JSON")
	}
	if err := os.WriteFile(f.filePath, data, 0644); err != nil {
		return goerrorkit.WrapWithMessage(err, "lỗi khi ghi file")
	}
	return nil
}

// Messages trả về các tin nhắn đã lưu trong outbox
func (f *FileSender) Messages() ([]models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileSender) read() ([]models.ContactMessage, error) {
	data, err := os.ReadFile(f.filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "lỗi khi đọc file")
	}
	if len(data) == 0 {
		return nil, nil
	}

	var messages []models.ContactMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "lỗi khi decode JSON").WithData(map[string]interface{}{
			"file": f.filePath,
		})
	}
	return messages, nil
}

var _ core.NotificationSender = (*FileSender)(nil)
