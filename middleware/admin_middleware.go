package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/goerrorkit"
	"github.com/techmaster-vietnam/portfolio/utils"
)

// TokenCookieName là tên cookie chứa admin JWT
const TokenCookieName = "token"

const adminEmailKey = "adminEmail"

// AdminMiddleware bảo vệ các route /api/admin bằng JWT của chủ site
type AdminMiddleware struct {
	secret string
	email  string
}

// NewAdminMiddleware creates a new admin middleware
// email là ADMIN_EMAIL đã cấu hình, token của email khác bị từ chối
func NewAdminMiddleware(secret, email string) *AdminMiddleware {
	return &AdminMiddleware{
		secret: secret,
		email:  strings.ToLower(strings.TrimSpace(email)),
	}
}

// RequireAdmin middleware requires a valid admin token
func (m *AdminMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return goerrorkit.NewAuthError(401, "Token không được cung cấp")
		}

		claims, err := utils.ValidateToken(token, m.secret)
		if err != nil {
			return goerrorkit.NewAuthError(401, "Token không hợp lệ").WithData(map[string]interface{}{
				"error": err.Error(),
			})
		}

		if m.email != "" && !strings.EqualFold(claims.Email, m.email) {
			return goerrorkit.NewAuthError(403, "Không có quyền truy cập")
		}

		c.Locals(adminEmailKey, claims.Email)
		return c.Next()
	}
}

// extractToken extracts token from Authorization header or cookie
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	return c.Cookies(TokenCookieName)
}

// GetAdminEmailFromContext gets admin email from context
func GetAdminEmailFromContext(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(adminEmailKey).(string)
	return email, ok
}
