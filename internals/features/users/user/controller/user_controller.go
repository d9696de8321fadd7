// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	leaveService "absensiku_backend/internals/features/leave/service"
	userDTO "absensiku_backend/internals/features/users/user/dto"
	userModel "absensiku_backend/internals/features/users/user/model"
	helper "absensiku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// CREATE
// POST /api/a/users
func (h *UserController) CreateUser(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := userModel.UserModel{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		Email:      req.Email,
		Password:   string(hashed),
		FullName:   req.FullName,
		Role:       req.Role,
		ManagerID:  req.ManagerID,
		Phone:      req.Phone,
		IsActive:   true,
	}
	if req.IsManager != nil {
		m.IsManager = *req.IsManager
	}
	m.SetDefaultValues()

	// insert user + saldo cuti per kategori aktif dalam satu transaksi,
	// supaya user baru langsung bisa mengajukan cuti berkuota
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return leaveService.InitializeBalancesForUser(tx, m.ID, time.Now())
	})
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.Error(c, fiber.StatusConflict, "Employee ID atau email sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", userDTO.ToUserResponse(&m))
}

// LIST (dengan filter role / is_active / manager_id)
// GET /api/a/users
func (h *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&userModel.UserModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if active := strings.TrimSpace(c.Query("is_active")); active != "" {
		q = q.Where("is_active = ?", active == "true" || active == "1")
	}
	if managerID := strings.TrimSpace(c.Query("manager_id")); managerID != "" {
		id, err := uuid.Parse(managerID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "manager_id tidak valid")
		}
		q = q.Where("manager_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	// kolom sort dibatasi whitelist
	order := p.OrderClause(map[string]string{
		"created_at":  "created_at",
		"full_name":   "full_name",
		"employee_id": "employee_id",
		"role":        "role",
	}, "created_at")

	var users []userModel.UserModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      userDTO.ToUserResponses(users),
		"pagination": helper.BuildMeta(total, p),
	})
}

// DETAIL
// GET /api/a/users/:id
func (h *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m userModel.UserModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.Success(c, "OK", userDTO.ToUserResponse(&m))
}

// UPDATE (partial)
// PATCH /api/a/users/:id
func (h *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	var m userModel.UserModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	if err := h.DB.Model(&m).Updates(updates).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.Error(c, fiber.StatusConflict, "Email sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.Success(c, "User berhasil diperbarui", userDTO.ToUserResponse(&m))
}

// DEACTIVATE (soft)
// DELETE /api/a/users/:id
func (h *UserController) DeactivateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Model(&userModel.UserModel{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menonaktifkan user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "User dinonaktifkan", nil)
}

// TEAM MEMBERS milik manager yang sedang login
// GET /api/m/team
func (h *UserController) ListTeamMembers(c *fiber.Ctx) error {
	managerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var users []userModel.UserModel
	if err := h.DB.
		Where("manager_id = ? AND is_active = ?", managerID, true).
		Order("full_name ASC").
		Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil anggota tim")
	}

	return helper.Success(c, "OK", userDTO.ToUserResponses(users))
}
