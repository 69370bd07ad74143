package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "perpusku_backend/internals/features/users/auth/controller"
	userController "perpusku_backend/internals/features/users/user/controller"
	authMiddleware "perpusku_backend/internals/middlewares/auth"

	"perpusku_backend/internals/middlewares"
)

// AuthRoutes mendaftarkan route register/login/me.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := authController.NewAuthController(db)
	userCtrl := userController.NewUserController(db)

	group := app.Group("/api/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	group.Get("/me", authMiddleware.AuthMiddleware(db), userCtrl.GetMe)
}
