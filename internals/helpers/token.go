package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Key Locals yang diisi auth middleware.
const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

// GetUserIDFromLocals mengambil user id yang sudah diverifikasi middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uint, error) {
	v := c.Locals(LocUserID)
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	return id, nil
}

// GetUserRoleFromLocals mengambil role dari context request.
func GetUserRoleFromLocals(c *fiber.Ctx) (string, error) {
	v := c.Locals(LocUserRole)
	role, ok := v.(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role information")
	}
	return role, nil
}
