package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookDTO "perpusku_backend/internals/features/library/books/dto"
	bookModel "perpusku_backend/internals/features/library/books/model"
	loanModel "perpusku_backend/internals/features/library/loans/model"
	"perpusku_backend/internals/constants"
)

// AddOrReactivate menambah buku baru, atau menghidupkan kembali buku yang
// pernah dihapus (soft delete) dengan natural key yang sama.
// Reaktivasi hanya flip BookIsActive; availability dan riwayat pinjam
// tidak direset. Return kedua = true jika buku direaktivasi.
func AddOrReactivate(db *gorm.DB, req *bookDTO.BookCreateRequest, imageFile string) (*bookModel.BookModel, bool, error) {
	if imageFile == "" {
		imageFile = constants.DefaultCoverImage
	}

	var book bookModel.BookModel
	reactivated := false

	if err := db.Transaction(func(tx *gorm.DB) error {
		var existing bookModel.BookModel
		err := tx.Where(
			"book_name = ? AND book_author = ? AND book_year_published = ?",
			req.Name, req.Author, req.YearPublished,
		).First(&existing).Error

		switch {
		case err == nil:
			if existing.BookIsActive {
				return fiber.NewError(fiber.StatusConflict, "Book already exists")
			}
			if err := tx.Model(&bookModel.BookModel{}).
				Where("book_id = ?", existing.BookID).
				Update("book_is_active", true).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to reactivate book")
			}
			existing.BookIsActive = true
			book = existing
			reactivated = true
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			book = bookModel.BookModel{
				BookName:          req.Name,
				BookAuthor:        req.Author,
				BookYearPublished: req.YearPublished,
				BookCategory:      req.Category,
				BookAvailable:     true,
				BookIsActive:      true,
				BookImageFile:     imageFile,
			}
			if err := tx.Create(&book).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create book")
			}
			return nil

		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up book")
		}
	}); err != nil {
		return nil, false, err
	}

	return &book, reactivated, nil
}

// Remove melakukan soft delete. Buku yang sedang dipinjam tidak boleh
// dihapus supaya loan aktif tidak kehilangan referensi katalognya.
func Remove(db *gorm.DB, bookID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var book bookModel.BookModel
		if err := tx.First(&book, "book_id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Book not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch book")
		}

		if !book.BookAvailable {
			return fiber.NewError(fiber.StatusConflict, "Book is loaned")
		}

		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", bookID).
			Update("book_is_active", false).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove book")
		}
		return nil
	})
}

// ListActive mengembalikan semua buku dengan tombstone belum terpasang.
func ListActive(db *gorm.DB) ([]bookModel.BookModel, error) {
	var books []bookModel.BookModel
	if err := db.
		Where("book_is_active = ?", true).
		Order("book_id ASC").
		Find(&books).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch books")
	}
	return books, nil
}

// GetByID mengambil satu buku apa adanya (termasuk yang sudah dihapus).
func GetByID(db *gorm.DB, bookID uint) (*bookModel.BookModel, error) {
	var book bookModel.BookModel
	if err := db.First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Book not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch book")
	}
	return &book, nil
}

// ListActiveWithLoanFlag mengembalikan buku aktif plus penanda apakah
// userID yang memegang loan aktifnya.
func ListActiveWithLoanFlag(db *gorm.DB, userID uint) ([]bookModel.BookModel, map[uint]bool, error) {
	books, err := ListActive(db)
	if err != nil {
		return nil, nil, err
	}

	var loanedIDs []uint
	if err := db.Model(&loanModel.LoanModel{}).
		Where("loan_user_id = ? AND loan_is_active = ?", userID, true).
		Pluck("loan_book_id", &loanedIDs).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loans")
	}

	flags := make(map[uint]bool, len(loanedIDs))
	for _, id := range loanedIDs {
		flags[id] = true
	}
	return books, flags, nil
}
