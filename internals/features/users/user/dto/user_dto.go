package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "absensiku_backend/internals/features/users/user/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateUserRequest struct {
	EmployeeID string     `json:"employee_id" validate:"required,max=20"`
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,min=8"`
	FullName   string     `json:"full_name" validate:"required,max=100"`
	Role       string     `json:"role" validate:"omitempty,oneof=employee manager admin"`
	IsManager  *bool      `json:"is_manager" validate:"omitempty"`
	ManagerID  *uuid.UUID `json:"manager_id" validate:"omitempty"`
	Phone      *string    `json:"phone" validate:"omitempty,max=20"`
}

// UpdateUserRequest: partial update eksplisit — hanya field non-nil yang ditulis.
// (pengganti whitelist field dinamis di sistem lama)
type UpdateUserRequest struct {
	FullName  *string    `json:"full_name" validate:"omitempty,max=100"`
	Phone     *string    `json:"phone" validate:"omitempty,max=20"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Role      *string    `json:"role" validate:"omitempty,oneof=employee manager admin"`
	IsManager *bool      `json:"is_manager" validate:"omitempty"`
	ManagerID *uuid.UUID `json:"manager_id" validate:"omitempty"`
	IsActive  *bool      `json:"is_active" validate:"omitempty"`
}

// ToUpdates membangun map kolom→nilai untuk GORM Updates
func (r *UpdateUserRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*r.FullName)
	}
	if r.Phone != nil {
		updates["phone"] = strings.TrimSpace(*r.Phone)
	}
	if r.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Role != nil {
		updates["role"] = *r.Role
	}
	if r.IsManager != nil {
		updates["is_manager"] = *r.IsManager
	}
	if r.ManagerID != nil {
		updates["manager_id"] = *r.ManagerID
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role"`
	IsManager    bool       `json:"is_manager"`
	ManagerID    *uuid.UUID `json:"manager_id,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	ProfileImage *string    `json:"profile_image,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		Email:        m.Email,
		FullName:     m.FullName,
		Role:         m.Role,
		IsManager:    m.IsManager,
		ManagerID:    m.ManagerID,
		Phone:        m.Phone,
		ProfileImage: m.ProfileImage,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func ToUserResponses(ms []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToUserResponse(&ms[i]))
	}
	return out
}
