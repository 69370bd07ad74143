package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	authDTO "perpusku_backend/internals/features/users/auth/dto"
	userModel "perpusku_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// ========================== REGISTER ==========================
// Registrasi role admin butuh admin code yang cocok dengan
// ADMIN_REGISTRATION_CODE; tanpa itu role admin ditolak.
func RegisterUser(db *gorm.DB, req *authDTO.RegisterRequest) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	role := req.Role
	if role == "" {
		role = "user"
	}
	if role == "admin" {
		if configs.AdminRegistrationCode == "" || req.AdminCode != configs.AdminRegistrationCode {
			return nil, fiber.NewError(fiber.StatusForbidden, "Invalid admin registration code")
		}
	}

	var existing userModel.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(req.FullName),
		Age:      req.Age,
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return &user, nil
}

// ========================== LOGIN ==========================
func AuthenticateUser(db *gorm.DB, email, password string) (string, *userModel.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if !user.IsActive {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := signAccessToken(&user)
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return token, &user, nil
}

func signAccessToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
