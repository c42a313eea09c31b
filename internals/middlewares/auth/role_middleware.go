package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "metalab_backend/internals/helpers"
)

// RequireRoles membatasi route ke role tertentu. Dipasang setelah AuthMiddleware.
func RequireRoles(message string, allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromLocals(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if _, ok := allowedSet[role]; !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, message)
		}
		return c.Next()
	}
}
