package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID string    `gorm:"size:20;unique;not null" json:"employee_id"`
	Email      string    `gorm:"size:255;unique;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`

	// employee | manager | admin
	Role      string     `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	IsManager bool       `gorm:"not null;default:false" json:"is_manager"`
	ManagerID *uuid.UUID `gorm:"type:uuid" json:"manager_id,omitempty"`

	Phone        *string `gorm:"size:20" json:"phone,omitempty"`
	ProfileImage *string `gorm:"size:255" json:"profile_image,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum simpan
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "employee"
	}
}
