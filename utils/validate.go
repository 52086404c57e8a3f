package utils

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/techmaster-vietnam/goerrorkit"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidateRequired kiểm tra field bắt buộc không rỗng
func ValidateRequired(field, value, message string) error {
	if strings.TrimSpace(value) == "" {
		return goerrorkit.NewValidationError(message, map[string]interface{}{
			"field": field,
		})
	}
	return nil
}

// ValidateMaxLength kiểm tra độ dài tối đa (tính theo rune)
func ValidateMaxLength(field, value string, max int) error {
	if len([]rune(value)) > max {
		return goerrorkit.NewValidationError("Nội dung quá dài", map[string]interface{}{
			"field":      field,
			"max_length": max,
		})
	}
	return nil
}

// ValidateEmail kiểm tra format email hợp lệ
// Email hợp lệ phải có dạng local@domain.tld, tối đa 320 ký tự,
// local part tối đa 64 ký tự (RFC 5321)
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return goerrorkit.NewValidationError("Email là bắt buộc", map[string]interface{}{
			"field": "email",
		})
	}

	if len(email) > 320 || !emailRegex.MatchString(email) {
		return goerrorkit.NewValidationError("Email không hợp lệ", map[string]interface{}{
			"field": "email",
			"value": email,
		})
	}

	if at := strings.IndexByte(email, '@'); at > 64 {
		return goerrorkit.NewValidationError("Email không hợp lệ: phần trước @ quá dài", map[string]interface{}{
			"field": "email",
			"value": email,
		})
	}

	return nil
}

// ValidateSlug kiểm tra slug chỉ gồm a-z, 0-9 và dấu gạch ngang đơn
func ValidateSlug(slug string) error {
	if slug == "" {
		return goerrorkit.NewValidationError("Slug là bắt buộc", map[string]interface{}{
			"field": "slug",
		})
	}
	if len(slug) > MaxSlugLength || !slugRegex.MatchString(slug) {
		return goerrorkit.NewValidationError("Slug chỉ được chứa chữ thường, số và dấu gạch ngang", map[string]interface{}{
			"field": "slug",
			"value": slug,
		})
	}
	return nil
}

// ValidateOptionalURL kiểm tra URL http(s) nếu có giá trị
func ValidateOptionalURL(field, value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return goerrorkit.NewValidationError("URL không hợp lệ", map[string]interface{}{
			"field": field,
			"value": value,
		})
	}
	return nil
}
