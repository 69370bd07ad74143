package model

import (
	"time"
)

// BookModel merepresentasikan tabel books.
//
// Invariant: BookAvailable == false hanya saat tepat satu record loans
// dengan loan_book_id == BookID masih aktif.
// BookIsActive adalah tombstone soft-delete; buku tidak pernah dihapus dari
// tabel supaya riwayat pinjam tetap utuh. Natural key (name, author,
// year_published) dibuat unik supaya re-add selalu menghidupkan record lama.
type BookModel struct {
	// PK
	BookID uint `json:"book_id" gorm:"column:book_id;primaryKey;autoIncrement"`

	// Natural key
	BookName          string `json:"book_name" gorm:"column:book_name;size:200;not null;uniqueIndex:uq_books_natural_key"`
	BookAuthor        string `json:"book_author" gorm:"column:book_author;size:100;not null;uniqueIndex:uq_books_natural_key"`
	BookYearPublished int    `json:"book_year_published" gorm:"column:book_year_published;not null;uniqueIndex:uq_books_natural_key"`

	// Kategori menentukan durasi pinjam (1 = 10 hari, 2 = 30 hari)
	BookCategory int `json:"book_category" gorm:"column:book_category;not null"`

	// Status
	BookAvailable bool `json:"book_available" gorm:"column:book_available;not null;default:true"`
	BookIsActive  bool `json:"book_is_active" gorm:"column:book_is_active;not null;default:true"`

	// Sampul (nama file di UploadDir)
	BookImageFile string `json:"book_image_file" gorm:"column:book_image_file;size:200;not null;default:'default.jpeg'"`

	// Timestamps
	BookCreatedAt time.Time `json:"book_created_at" gorm:"column:book_created_at;autoCreateTime"`
	BookUpdatedAt time.Time `json:"book_updated_at" gorm:"column:book_updated_at;autoUpdateTime"`
}

func (BookModel) TableName() string { return "books" }
