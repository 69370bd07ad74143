package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "perpusku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes mendaftarkan route user untuk admin.
// Group sudah dilindungi AuthMiddleware + OnlyRoles(admin) di route index.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	admin.Get("/users", ctrl.GetAll)
}
