package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLength là độ dài tối đa của slug (khớp varchar(150) trong DB)
const MaxSlugLength = 150

// Slugify converts a title to a URL slug
// Ví dụ: "Ứng dụng Web App đầu tiên" -> "ung-dung-web-app-dau-tien"
func Slugify(title string) string {
	folded := foldDiacritics(title)

	var result strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && result.Len() > 0 {
				result.WriteByte('-')
			}
			pendingDash = false
			result.WriteRune(r)
		default:
			pendingDash = true
		}
	}

	slug := result.String()
	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}
	return slug
}

// foldDiacritics bỏ dấu tiếng Việt và các dấu kết hợp khác
func foldDiacritics(s string) string {
	s = strings.NewReplacer("đ", "d", "Đ", "D").Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
