package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpusku_backend/internals/configs"
	bookDTO "perpusku_backend/internals/features/library/books/dto"
	bookService "perpusku_backend/internals/features/library/books/service"
	authDTO "perpusku_backend/internals/features/users/auth/dto"
	authService "perpusku_backend/internals/features/users/auth/service"
	"perpusku_backend/internals/constants"
)

// Alur lengkap: register admin → tambah buku → register user → pinjam →
// pinjam lagi (gagal) → kembalikan → admin hapus buku → katalog kosong.
func TestFullLoanLifecycle(t *testing.T) {
	db := setupTestDB(t)

	oldSecret, oldCode := configs.JWTSecret, configs.AdminRegistrationCode
	configs.JWTSecret = "test-secret"
	configs.AdminRegistrationCode = "7732/16"
	t.Cleanup(func() {
		configs.JWTSecret = oldSecret
		configs.AdminRegistrationCode = oldCode
	})

	admin, err := authService.RegisterUser(db, &authDTO.RegisterRequest{
		Email:     "admin@example.com",
		Password:  "password-admin",
		FullName:  "Pak Admin",
		Age:       40,
		Role:      "admin",
		AdminCode: "7732/16",
	})
	require.NoError(t, err)
	require.Equal(t, constants.RoleAdmin, admin.Role)

	book, reactivated, err := bookService.AddOrReactivate(db, &bookDTO.BookCreateRequest{
		Name:          "Laskar Pelangi",
		Author:        "Andrea Hirata",
		YearPublished: 2005,
		Category:      constants.BookCategoryShortTerm,
	}, "")
	require.NoError(t, err)
	require.False(t, reactivated)

	member, err := authService.RegisterUser(db, &authDTO.RegisterRequest{
		Email:    "member@example.com",
		Password: "password-user",
		FullName: "Bu Member",
		Age:      25,
	})
	require.NoError(t, err)

	// pinjam: sukses, buku jadi tidak available
	loan, err := LoanBook(db, book.BookID, member.ID)
	require.NoError(t, err)
	assert.True(t, loan.LoanIsActive)
	assertLoanInvariant(t, db, book.BookID)

	// pinjam kedua pada buku yang sama: Conflict
	_, err = LoanBook(db, book.BookID, member.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// hapus saat masih dipinjam: Conflict
	err = bookService.Remove(db, book.BookID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// kembalikan: buku available lagi
	require.NoError(t, ReturnBook(db, book.BookID, member.ID))
	assertLoanInvariant(t, db, book.BookID)

	// sekarang admin bisa menghapus
	require.NoError(t, bookService.Remove(db, book.BookID))

	active, err := bookService.ListActive(db)
	require.NoError(t, err)
	assert.Empty(t, active)

	// tapi record-nya masih ada (soft delete)
	fetched, err := bookService.GetByID(db, book.BookID)
	require.NoError(t, err)
	assert.False(t, fetched.BookIsActive)

	// dan buku yang sudah dihapus tidak bisa dipinjam
	_, err = LoanBook(db, book.BookID, member.ID)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}
