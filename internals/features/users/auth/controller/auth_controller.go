package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "perpusku_backend/internals/features/users/auth/dto"
	authService "perpusku_backend/internals/features/users/auth/service"
	userDTO "perpusku_backend/internals/features/users/user/dto"
	helper "perpusku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* =========================================================
   REGISTER
   POST /api/auth/register
   ========================================================= */
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := authService.RegisterUser(ctrl.DB, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered successfully", userDTO.FromModel(user))
}

/* =========================================================
   LOGIN
   POST /api/auth/login
   ========================================================= */
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, _, err := authService.AuthenticateUser(ctrl.DB, req.Email, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Login successful", authDTO.LoginResponse{AccessToken: token})
}
