package dto

import (
	loanModel "perpusku_backend/internals/features/library/loans/model"
	loanService "perpusku_backend/internals/features/library/loans/service"
	helper "perpusku_backend/internals/helpers"
)

/* =========================
   RESPONSE
   ========================= */

// LoanResponse adalah jawaban untuk loan yang baru dibuat.
// Due date ditampilkan sebagai tanggal kalender saja (UTC).
type LoanResponse struct {
	LoanID        uint   `json:"loan_id"`
	LoanBookID    uint   `json:"loan_book_id"`
	LoanDate      string `json:"loan_date"`
	ReturnDueDate string `json:"return_due_date"`
}

func FromModel(m *loanModel.LoanModel) LoanResponse {
	return LoanResponse{
		LoanID:        m.LoanID,
		LoanBookID:    m.LoanBookID,
		LoanDate:      helper.FormatDate(m.LoanDate),
		ReturnDueDate: helper.FormatDate(m.LoanReturnDueDate),
	}
}

// LoanReportResponse untuk laporan admin (active/late loans).
// Timestamp ditampilkan penuh, UTC.
type LoanReportResponse struct {
	LoanID            uint   `json:"loan_id"`
	LoanUserID        uint   `json:"loan_user_id"`
	UserName          string `json:"user_name"`
	LoanBookID        uint   `json:"loan_book_id"`
	BookName          string `json:"book_name"`
	BookAuthor        string `json:"book_author"`
	BookYearPublished int    `json:"book_year_published"`
	LoanDate          string `json:"loan_date"`
	LoanReturnDueDate string `json:"loan_return_due_date"`
}

func FromReportRow(r *loanService.LoanReportRow) LoanReportResponse {
	return LoanReportResponse{
		LoanID:            r.LoanID,
		LoanUserID:        r.LoanUserID,
		UserName:          r.UserName,
		LoanBookID:        r.LoanBookID,
		BookName:          r.BookName,
		BookAuthor:        r.BookAuthor,
		BookYearPublished: r.BookYearPublished,
		LoanDate:          helper.FormatDateTime(r.LoanDate),
		LoanReturnDueDate: helper.FormatDateTime(r.LoanReturnDueDate),
	}
}

func FromReportRows(rows []loanService.LoanReportRow) []LoanReportResponse {
	out := make([]LoanReportResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromReportRow(&rows[i]))
	}
	return out
}
