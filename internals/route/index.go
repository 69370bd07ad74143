package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/constants"
	bookRoute "perpusku_backend/internals/features/library/books/route"
	loanRoute "perpusku_backend/internals/features/library/loans/route"
	authRoute "perpusku_backend/internals/features/users/auth/route"
	userRoute "perpusku_backend/internals/features/users/user/route"
	authMiddleware "perpusku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	bookRoute.BookPublicRoutes(public, db)

	// Sampul buku
	app.Static("/media", configs.UploadDir)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)
	bookRoute.BookUserRoutes(user, db)
	loanRoute.LoanUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("library management"), constants.RoleAdmin),
	)
	bookRoute.BookAdminRoutes(admin, db)
	loanRoute.LoanAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}
