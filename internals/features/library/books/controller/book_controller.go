package controller

import (
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookDTO "perpusku_backend/internals/features/library/books/dto"
	bookService "perpusku_backend/internals/features/library/books/service"
	helper "perpusku_backend/internals/helpers"
)

var validate = validator.New()

type BookController struct {
	DB *gorm.DB
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db}
}

/* =========================================================
   CREATE / REACTIVATE (admin)
   POST /api/a/books  (multipart: data = JSON, image = file opsional)
   ========================================================= */
func (ctrl *BookController) AddBook(c *fiber.Ctx) error {
	raw := c.FormValue("data")
	if raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid data")
	}

	var req bookDTO.BookCreateRequest
	if err := sonic.Unmarshal([]byte(raw), &req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid JSON")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Upload sampul opsional; buku reaktivasi tetap pakai sampul lamanya.
	imageFile := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		name, err := helper.SaveCoverImage(fh)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		imageFile = name
	}

	book, reactivated, err := bookService.AddOrReactivate(ctrl.DB, &req, imageFile)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if reactivated {
		return helper.Success(c, "Book reactivated successfully", bookDTO.FromModel(book))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Book added successfully", bookDTO.FromModel(book))
}

/* =========================================================
   REMOVE / SOFT DELETE (admin)
   DELETE /api/a/books/:id
   ========================================================= */
func (ctrl *BookController) RemoveBook(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid book id")
	}

	if err := bookService.Remove(ctrl.DB, uint(id)); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Book removed successfully", nil)
}

/* =========================================================
   LIST ACTIVE (public)
   GET /api/public/books
   ========================================================= */
func (ctrl *BookController) GetActiveBooks(c *fiber.Ctx) error {
	books, err := bookService.ListActive(ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Books fetched successfully", bookDTO.FromModels(books))
}

/* =========================================================
   LIST ACTIVE + LOAN FLAG (user)
   GET /api/u/books
   ========================================================= */
func (ctrl *BookController) GetBooksWithLoanFlag(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	books, flags, err := bookService.ListActiveWithLoanFlag(ctrl.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]bookDTO.BookWithLoanFlagResponse, 0, len(books))
	for i := range books {
		out = append(out, bookDTO.BookWithLoanFlagResponse{
			BookResponse: bookDTO.FromModel(&books[i]),
			LoanedByUser: flags[books[i].BookID],
		})
	}

	return helper.Success(c, "Books fetched successfully", out)
}
