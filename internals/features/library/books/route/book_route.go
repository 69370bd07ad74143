package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "perpusku_backend/internals/features/library/books/controller"
)

// BookPublicRoutes: katalog buku aktif, tanpa login.
func BookPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := bookController.NewBookController(db)
	public.Get("/books", ctrl.GetActiveBooks)
}

// BookUserRoutes: katalog + penanda loaned_by_user.
func BookUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := bookController.NewBookController(db)
	user.Get("/books", ctrl.GetBooksWithLoanFlag)
}

// BookAdminRoutes: tambah & hapus buku.
func BookAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := bookController.NewBookController(db)
	admin.Post("/books", ctrl.AddBook)
	admin.Delete("/books/:id", ctrl.RemoveBook)
}
