package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loanController "perpusku_backend/internals/features/library/loans/controller"
)

// LoanUserRoutes: loan/return untuk user yang sudah login.
func LoanUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := loanController.NewLoanController(db)
	user.Post("/loans/:book_id", ctrl.LoanBook)
	user.Post("/loans/:book_id/return", ctrl.ReturnBook)
}

// LoanAdminRoutes: laporan loan aktif & terlambat.
func LoanAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := loanController.NewLoanController(db)
	admin.Get("/loans", ctrl.GetActiveLoans)
	admin.Get("/loans/late", ctrl.GetLateLoans)
}
