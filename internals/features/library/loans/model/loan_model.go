package model

import (
	"time"
)

// LoanModel merepresentasikan tabel loans (ledger pinjaman).
//
// Invariant: per loan_book_id maksimal satu record dengan
// loan_is_active == true. Record loan tidak pernah dihapus; pengembalian
// hanya flip loan_is_active ke false, jadi riwayat pinjam menumpuk di sini.
type LoanModel struct {
	LoanID uint `json:"loan_id" gorm:"column:loan_id;primaryKey;autoIncrement"`

	// Referensi (bukan ownership) ke users.id dan books.book_id
	LoanUserID uint `json:"loan_user_id" gorm:"column:loan_user_id;not null;index:idx_loans_user"`
	LoanBookID uint `json:"loan_book_id" gorm:"column:loan_book_id;not null;index:idx_loans_book_active,priority:1"`

	LoanDate          time.Time `json:"loan_date" gorm:"column:loan_date;not null"`
	LoanReturnDueDate time.Time `json:"loan_return_due_date" gorm:"column:loan_return_due_date;not null"`

	LoanIsActive bool `json:"loan_is_active" gorm:"column:loan_is_active;not null;default:true;index:idx_loans_book_active,priority:2"`

	LoanCreatedAt time.Time `json:"loan_created_at" gorm:"column:loan_created_at;autoCreateTime"`
	LoanUpdatedAt time.Time `json:"loan_updated_at" gorm:"column:loan_updated_at;autoUpdateTime"`
}

func (LoanModel) TableName() string { return "loans" }
