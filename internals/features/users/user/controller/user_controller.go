package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "perpusku_backend/internals/features/users/user/dto"
	userModel "perpusku_backend/internals/features/users/user/model"
	helper "perpusku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* =========================================================
   GET ALL (admin)
   GET /api/a/users
   ========================================================= */
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("is_active = ?", true).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []userModel.UserModel
	if err := ctrl.DB.
		Where("is_active = ?", true).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.Success(c, "Users fetched successfully", fiber.Map{
		"users":      userDTO.FromModels(users),
		"pagination": helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(users)),
	})
}

/* =========================================================
   GET ME
   GET /api/auth/me
   ========================================================= */
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.Success(c, "User fetched successfully", userDTO.FromModel(&user))
}
