package constants

import "time"

// Kategori buku mengikuti kode integer lama (1 = short term, 2 = long term).
const (
	BookCategoryShortTerm = 1
	BookCategoryLongTerm  = 2
)

// Durasi pinjam per kategori (hari)
const (
	ShortTermLoanDays = 10
	LongTermLoanDays  = 30
)

func IsValidBookCategory(category int) bool {
	return category == BookCategoryShortTerm || category == BookCategoryLongTerm
}

// LoanDuration mengembalikan lama pinjam berdasarkan kategori buku.
func LoanDuration(category int) time.Duration {
	if category == BookCategoryShortTerm {
		return ShortTermLoanDays * 24 * time.Hour
	}
	return LongTermLoanDays * 24 * time.Hour
}
