package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookModel "perpusku_backend/internals/features/library/books/model"
	loanModel "perpusku_backend/internals/features/library/loans/model"
	"perpusku_backend/internals/constants"
	helper "perpusku_backend/internals/helpers"
)

// timeNow bisa diganti di test untuk tanggal pinjam deterministik.
var timeNow = time.Now

// LoanBook membuat loan aktif untuk bookID atas nama userID.
//
// Precondition dicek berurutan (gagal pertama yang menang):
// buku ada → masih available → belum dihapus. Flip availability dilakukan
// dengan guarded UPDATE (WHERE book_available = TRUE) di dalam transaction,
// jadi dua request yang balapan tidak mungkin sama-sama lolos; yang kalah
// dapat 409. Insert loan dan flip availability commit bersama atau tidak
// sama sekali.
func LoanBook(db *gorm.DB, bookID, userID uint) (*loanModel.LoanModel, error) {
	var loan loanModel.LoanModel

	if err := db.Transaction(func(tx *gorm.DB) error {
		var book bookModel.BookModel
		if err := tx.First(&book, "book_id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Book not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch book")
		}

		if !book.BookAvailable {
			return fiber.NewError(fiber.StatusConflict, "Book is not available")
		}
		if !book.BookIsActive {
			return fiber.NewError(fiber.StatusConflict, "Book is not active")
		}

		res := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ? AND book_available = ? AND book_is_active = ?", bookID, true, true).
			Update("book_available", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update book")
		}
		if res.RowsAffected == 0 {
			// kalah balapan dengan peminjam lain
			return fiber.NewError(fiber.StatusConflict, "Book is not available")
		}

		loanDate := timeNow().UTC()
		loan = loanModel.LoanModel{
			LoanUserID:        userID,
			LoanBookID:        bookID,
			LoanDate:          loanDate,
			LoanReturnDueDate: loanDate.Add(constants.LoanDuration(book.BookCategory)),
			LoanIsActive:      true,
		}
		if err := tx.Create(&loan).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create loan")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &loan, nil
}

// ReturnBook menutup loan aktif untuk bookID.
//
// Lookup sengaja pakai book id, bukan loan id: invariant satu-loan-aktif-
// per-buku menjamin paling banyak satu record cocok. Hanya pemilik loan
// yang boleh mengembalikan; admin pun tidak bisa lewat operasi ini.
func ReturnBook(db *gorm.DB, bookID, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var loan loanModel.LoanModel
		if err := tx.Where("loan_book_id = ? AND loan_is_active = ?", bookID, true).
			First(&loan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Active loan not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loan")
		}

		if loan.LoanUserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "You did not loan this book")
		}

		res := tx.Model(&loanModel.LoanModel{}).
			Where("loan_id = ? AND loan_is_active = ?", loan.LoanID, true).
			Update("loan_is_active", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update loan")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Active loan not found")
		}

		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", bookID).
			Update("book_available", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update book")
		}
		return nil
	})
}

/* =========================================================
   REPORTS (admin)
   ========================================================= */

// LoanReportRow adalah proyeksi join loans + users + books untuk laporan.
type LoanReportRow struct {
	LoanID            uint      `gorm:"column:loan_id"`
	LoanUserID        uint      `gorm:"column:loan_user_id"`
	UserName          string    `gorm:"column:user_name"`
	LoanBookID        uint      `gorm:"column:loan_book_id"`
	BookName          string    `gorm:"column:book_name"`
	BookAuthor        string    `gorm:"column:book_author"`
	BookYearPublished int       `gorm:"column:book_year_published"`
	LoanDate          time.Time `gorm:"column:loan_date"`
	LoanReturnDueDate time.Time `gorm:"column:loan_return_due_date"`
}

const loanReportSelect = `loans.loan_id, loans.loan_user_id, users.full_name AS user_name,
loans.loan_book_id, books.book_name, books.book_author, books.book_year_published,
loans.loan_date, loans.loan_return_due_date`

func loanReportQuery(db *gorm.DB) *gorm.DB {
	return db.Table("loans").
		Select(loanReportSelect).
		Joins("JOIN users ON users.id = loans.loan_user_id").
		Joins("JOIN books ON books.book_id = loans.loan_book_id").
		Where("loans.loan_is_active = ?", true)
}

// ListActiveLoans mengembalikan semua loan yang masih berjalan.
func ListActiveLoans(db *gorm.DB, p helper.Paging) ([]LoanReportRow, int64, error) {
	var total int64
	if err := db.Model(&loanModel.LoanModel{}).
		Where("loan_is_active = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count loans")
	}

	var rows []LoanReportRow
	if err := loanReportQuery(db).
		Order("loans.loan_id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch loans")
	}
	return rows, total, nil
}

// ListLateLoans mengembalikan loan aktif yang due date-nya sudah lewat.
// Loan yang jatuh tempo tepat pada now tidak termasuk (strictly before).
func ListLateLoans(db *gorm.DB, now time.Time, p helper.Paging) ([]LoanReportRow, int64, error) {
	var total int64
	if err := db.Model(&loanModel.LoanModel{}).
		Where("loan_is_active = ? AND loan_return_due_date < ?", true, now).
		Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count late loans")
	}

	var rows []LoanReportRow
	if err := loanReportQuery(db).
		Where("loans.loan_return_due_date < ?", now).
		Order("loans.loan_return_due_date ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch late loans")
	}
	return rows, total, nil
}
