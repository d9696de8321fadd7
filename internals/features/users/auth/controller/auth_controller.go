// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "absensiku_backend/internals/features/users/auth/dto"
	authService "absensiku_backend/internals/features/users/auth/service"
	userDTO "absensiku_backend/internals/features/users/user/dto"
	userModel "absensiku_backend/internals/features/users/user/model"
	helper "absensiku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := h.DB.First(&u, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] login query:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan sistem")
	}

	if !u.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, refresh, err := authService.GenerateTokenPair(&u, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.ToUserResponse(&u),
	})
}

// POST /api/auth/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u userModel.UserModel
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !u.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	access, refresh, err := authService.GenerateTokenPair(&u, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Token diperbarui", authDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.ToUserResponse(&u),
	})
}

// GET /api/u/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u userModel.UserModel
	if err := h.DB.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan sistem")
	}

	return helper.Success(c, "OK", userDTO.ToUserResponse(&u))
}
