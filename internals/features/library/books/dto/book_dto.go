package dto

import (
	"strings"

	model "perpusku_backend/internals/features/library/books/model"
)

/* =========================
   REQUEST
   ========================= */

// BookCreateRequest adalah isi part "data" pada multipart POST /api/a/books.
type BookCreateRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Author        string `json:"author" validate:"required,min=1,max=100"`
	YearPublished int    `json:"year_published" validate:"required,gte=1,lte=2100"`
	Category      int    `json:"category" validate:"required,oneof=1 2"`
}

func (r *BookCreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Author = strings.TrimSpace(r.Author)
}

/* =========================
   RESPONSE
   ========================= */

type BookResponse struct {
	BookID            uint   `json:"book_id"`
	BookName          string `json:"book_name"`
	BookAuthor        string `json:"book_author"`
	BookYearPublished int    `json:"book_year_published"`
	BookCategory      int    `json:"book_category"`
	BookAvailable     bool   `json:"book_available"`
	BookIsActive      bool   `json:"book_is_active"`
	BookImageURL      string `json:"book_image_url"`
}

// BookWithLoanFlagResponse menambah penanda apakah user yang sedang login
// yang meminjam buku tersebut.
type BookWithLoanFlagResponse struct {
	BookResponse
	LoanedByUser bool `json:"loaned_by_user"`
}

func FromModel(m *model.BookModel) BookResponse {
	return BookResponse{
		BookID:            m.BookID,
		BookName:          m.BookName,
		BookAuthor:        m.BookAuthor,
		BookYearPublished: m.BookYearPublished,
		BookCategory:      m.BookCategory,
		BookAvailable:     m.BookAvailable,
		BookIsActive:      m.BookIsActive,
		BookImageURL:      "/media/" + m.BookImageFile,
	}
}

func FromModels(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
