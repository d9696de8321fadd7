package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel merepresentasikan tabel notifications
type NotificationModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	// general | break_violation | auto_logout | leave_approved | leave_rejected | comp_off_added
	Type    string `gorm:"type:varchar(30);not null;default:'general'" json:"type"`
	Title   string `gorm:"size:150;not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`

	ActionURL *string `gorm:"size:255" json:"action_url,omitempty"`

	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
