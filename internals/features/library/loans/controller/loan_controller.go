package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	loanDTO "perpusku_backend/internals/features/library/loans/dto"
	loanService "perpusku_backend/internals/features/library/loans/service"
	helper "perpusku_backend/internals/helpers"
)

type LoanController struct {
	DB *gorm.DB
}

func NewLoanController(db *gorm.DB) *LoanController {
	return &LoanController{DB: db}
}

func parseBookID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("book_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid book id")
	}
	return uint(id), nil
}

/* =========================================================
   LOAN
   POST /api/u/loans/:book_id
   ========================================================= */
func (ctrl *LoanController) LoanBook(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bookID, err := parseBookID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	loan, err := loanService.LoanBook(ctrl.DB, bookID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Book loaned successfully", loanDTO.FromModel(loan))
}

/* =========================================================
   RETURN
   POST /api/u/loans/:book_id/return
   ========================================================= */
func (ctrl *LoanController) ReturnBook(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bookID, err := parseBookID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := loanService.ReturnBook(ctrl.DB, bookID, userID); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Book returned successfully", nil)
}

/* =========================================================
   ACTIVE LOANS (admin)
   GET /api/a/loans
   ========================================================= */
func (ctrl *LoanController) GetActiveLoans(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	rows, total, err := loanService.ListActiveLoans(ctrl.DB, p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Active loans fetched successfully", fiber.Map{
		"loans":      loanDTO.FromReportRows(rows),
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)),
	})
}

/* =========================================================
   LATE LOANS (admin)
   GET /api/a/loans/late
   ========================================================= */
func (ctrl *LoanController) GetLateLoans(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	rows, total, err := loanService.ListLateLoans(ctrl.DB, time.Now().UTC(), p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Late loans fetched successfully", fiber.Map{
		"loans":      loanDTO.FromReportRows(rows),
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(rows)),
	})
}
