package models

import (
	"time"
)

// ContactMessage là nội dung form liên hệ gửi tới chủ site.
// Không lưu vào database, chỉ chuyển tiếp qua email
type ContactMessage struct {
	Reference  string    `json:"reference"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
