package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bookModel "perpusku_backend/internals/features/library/books/model"
	loanModel "perpusku_backend/internals/features/library/loans/model"
	userModel "perpusku_backend/internals/features/users/user/model"
	"perpusku_backend/internals/constants"
	helper "perpusku_backend/internals/helpers"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&bookModel.BookModel{},
		&loanModel.LoanModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *userModel.UserModel {
	t.Helper()
	user := userModel.UserModel{
		Email:    email,
		Password: "not-a-real-hash",
		FullName: "Test User",
		Age:      30,
		Role:     constants.RoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedBook(t *testing.T, db *gorm.DB, name string, category int) *bookModel.BookModel {
	t.Helper()
	book := bookModel.BookModel{
		BookName:          name,
		BookAuthor:        "Author",
		BookYearPublished: 2020,
		BookCategory:      category,
		BookAvailable:     true,
		BookIsActive:      true,
		BookImageFile:     constants.DefaultCoverImage,
	}
	require.NoError(t, db.Create(&book).Error)
	return &book
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func fixedNow(t *testing.T, ts time.Time) {
	t.Helper()
	old := timeNow
	timeNow = func() time.Time { return ts }
	t.Cleanup(func() { timeNow = old })
}

// Invariant: book_available == false persis saat ada tepat satu loan aktif.
func assertLoanInvariant(t *testing.T, db *gorm.DB, bookID uint) {
	t.Helper()
	var book bookModel.BookModel
	require.NoError(t, db.First(&book, "book_id = ?", bookID).Error)

	var activeLoans int64
	require.NoError(t, db.Model(&loanModel.LoanModel{}).
		Where("loan_book_id = ? AND loan_is_active = ?", bookID, true).
		Count(&activeLoans).Error)

	if book.BookAvailable {
		assert.EqualValues(t, 0, activeLoans, "available book must have no active loan")
	} else {
		assert.EqualValues(t, 1, activeLoans, "unavailable book must have exactly one active loan")
	}
}

func TestLoanBook_DueDateByCategory(t *testing.T) {
	loanedAt := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		category int
		wantDue  string
	}{
		{"short term is 10 days", constants.BookCategoryShortTerm, "2024-01-11"},
		{"long term is 30 days", constants.BookCategoryLongTerm, "2024-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			fixedNow(t, loanedAt)

			user := seedUser(t, db, "borrower@example.com")
			book := seedBook(t, db, "Buku "+tt.name, tt.category)

			loan, err := LoanBook(db, book.BookID, user.ID)
			require.NoError(t, err)

			assert.Equal(t, user.ID, loan.LoanUserID)
			assert.Equal(t, book.BookID, loan.LoanBookID)
			assert.True(t, loan.LoanIsActive)
			assert.Equal(t, "2024-01-01", helper.FormatDate(loan.LoanDate))
			assert.Equal(t, tt.wantDue, helper.FormatDate(loan.LoanReturnDueDate))

			var updated bookModel.BookModel
			require.NoError(t, db.First(&updated, "book_id = ?", book.BookID).Error)
			assert.False(t, updated.BookAvailable)

			assertLoanInvariant(t, db, book.BookID)
		})
	}
}

func TestLoanBook_BookNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "borrower@example.com")

	_, err := LoanBook(db, 999, user.ID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestLoanBook_NotAvailable(t *testing.T) {
	db := setupTestDB(t)
	first := seedUser(t, db, "first@example.com")
	second := seedUser(t, db, "second@example.com")
	book := seedBook(t, db, "Buku Populer", constants.BookCategoryShortTerm)

	_, err := LoanBook(db, book.BookID, first.ID)
	require.NoError(t, err)

	_, err = LoanBook(db, book.BookID, second.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// gagal loan tidak boleh mengubah state
	var total int64
	require.NoError(t, db.Model(&loanModel.LoanModel{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
	assertLoanInvariant(t, db, book.BookID)
}

func TestLoanBook_InactiveBook(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "borrower@example.com")
	book := seedBook(t, db, "Buku Dihapus", constants.BookCategoryShortTerm)
	require.NoError(t, db.Model(&bookModel.BookModel{}).
		Where("book_id = ?", book.BookID).
		Update("book_is_active", false).Error)

	_, err := LoanBook(db, book.BookID, user.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	var total int64
	require.NoError(t, db.Model(&loanModel.LoanModel{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestReturnBook_Success(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "borrower@example.com")
	book := seedBook(t, db, "Buku Dikembalikan", constants.BookCategoryShortTerm)

	loan, err := LoanBook(db, book.BookID, user.ID)
	require.NoError(t, err)

	require.NoError(t, ReturnBook(db, book.BookID, user.ID))

	var updatedLoan loanModel.LoanModel
	require.NoError(t, db.First(&updatedLoan, "loan_id = ?", loan.LoanID).Error)
	assert.False(t, updatedLoan.LoanIsActive)

	var updatedBook bookModel.BookModel
	require.NoError(t, db.First(&updatedBook, "book_id = ?", book.BookID).Error)
	assert.True(t, updatedBook.BookAvailable)

	assertLoanInvariant(t, db, book.BookID)

	// pengembalian kedua tidak menemukan loan aktif
	err = ReturnBook(db, book.BookID, user.ID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestReturnBook_NotOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	book := seedBook(t, db, "Buku Orang Lain", constants.BookCategoryShortTerm)

	loan, err := LoanBook(db, book.BookID, owner.ID)
	require.NoError(t, err)

	err = ReturnBook(db, book.BookID, other.ID)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// state tidak berubah
	var unchangedLoan loanModel.LoanModel
	require.NoError(t, db.First(&unchangedLoan, "loan_id = ?", loan.LoanID).Error)
	assert.True(t, unchangedLoan.LoanIsActive)

	var unchangedBook bookModel.BookModel
	require.NoError(t, db.First(&unchangedBook, "book_id = ?", book.BookID).Error)
	assert.False(t, unchangedBook.BookAvailable)

	assertLoanInvariant(t, db, book.BookID)
}

func TestReturnBook_NoActiveLoan(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "borrower@example.com")
	book := seedBook(t, db, "Buku Nganggur", constants.BookCategoryShortTerm)

	err := ReturnBook(db, book.BookID, user.ID)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestListLateLoans(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "borrower@example.com")
	late := seedBook(t, db, "Buku Telat", constants.BookCategoryShortTerm)
	onTime := seedBook(t, db, "Buku Tepat Waktu", constants.BookCategoryShortTerm)
	exact := seedBook(t, db, "Buku Pas Deadline", constants.BookCategoryShortTerm)
	returned := seedBook(t, db, "Buku Sudah Kembali", constants.BookCategoryShortTerm)

	loanedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedNow(t, loanedAt)

	for _, b := range []*bookModel.BookModel{late, onTime, exact, returned} {
		_, err := LoanBook(db, b.BookID, user.ID)
		require.NoError(t, err)
	}
	require.NoError(t, ReturnBook(db, returned.BookID, user.ID))

	dueAt := loanedAt.Add(constants.ShortTermLoanDays * 24 * time.Hour)

	t.Run("after due date only late loans listed", func(t *testing.T) {
		now := dueAt.Add(1 * time.Hour)
		// buku onTime due-nya dimundurkan biar belum telat
		require.NoError(t, db.Model(&loanModel.LoanModel{}).
			Where("loan_book_id = ?", onTime.BookID).
			Update("loan_return_due_date", now.Add(24*time.Hour)).Error)

		rows, total, err := ListLateLoans(db, now, helper.Paging{Page: 1, PerPage: 25, Limit: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)

		gotBooks := map[uint]bool{}
		for _, r := range rows {
			gotBooks[r.LoanBookID] = true
			assert.Equal(t, "Test User", r.UserName)
		}
		assert.True(t, gotBooks[late.BookID])
		assert.True(t, gotBooks[exact.BookID])
		assert.False(t, gotBooks[onTime.BookID], "not-yet-due loan must be excluded")
		assert.False(t, gotBooks[returned.BookID], "returned loan must be excluded")
	})

	t.Run("loan due exactly at now is excluded", func(t *testing.T) {
		_, total, err := ListLateLoans(db, dueAt, helper.Paging{Page: 1, PerPage: 25, Limit: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})
}

func TestListActiveLoans(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "borrower@example.com")
	keep := seedBook(t, db, "Buku Masih Dipinjam", constants.BookCategoryLongTerm)
	back := seedBook(t, db, "Buku Kembali", constants.BookCategoryShortTerm)

	_, err := LoanBook(db, keep.BookID, user.ID)
	require.NoError(t, err)
	_, err = LoanBook(db, back.BookID, user.ID)
	require.NoError(t, err)
	require.NoError(t, ReturnBook(db, back.BookID, user.ID))

	rows, total, err := ListActiveLoans(db, helper.Paging{Page: 1, PerPage: 25, Limit: 25})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, keep.BookID, rows[0].LoanBookID)
	assert.Equal(t, "Buku Masih Dipinjam", rows[0].BookName)
	assert.Equal(t, "Author", rows[0].BookAuthor)
}
