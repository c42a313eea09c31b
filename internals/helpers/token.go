package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	ErrNoUserID   = errors.New("user_id tidak ditemukan di token")
	ErrBadUserID  = errors.New("user_id tidak valid")
	ErrNoUserRole = errors.New("role tidak ditemukan di token")
)

// GetUserIDFromLocals membaca user_id yang disimpan AuthMiddleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, ErrNoUserID
	}
	switch id := v.(type) {
	case uuid.UUID:
		return id, nil
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, ErrBadUserID
		}
		return parsed, nil
	default:
		return uuid.Nil, ErrBadUserID
	}
}

// GetRoleFromLocals membaca role caller yang disimpan AuthMiddleware.
func GetRoleFromLocals(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals("user_role").(string)
	if !ok || v == "" {
		return "", ErrNoUserRole
	}
	return v, nil
}
