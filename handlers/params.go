package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/goerrorkit"
)

// parseID đọc path param dạng uint
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, goerrorkit.NewValidationError("ID không hợp lệ", map[string]interface{}{
			name: c.Params(name),
		})
	}
	return uint(id), nil
}

// parseOptionalID đọc query param dạng uint, rỗng trả về nil
func parseOptionalID(c *fiber.Ctx, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, goerrorkit.NewValidationError("ID không hợp lệ", map[string]interface{}{
			name: raw,
		})
	}
	value := uint(id)
	return &value, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return goerrorkit.NewValidationError("Dữ liệu không hợp lệ", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}
