package model

import (
	"time"

	"github.com/google/uuid"
)

// LeaveCategoryModel: definisi kebijakan cuti. Tiga tier kuota
// (monthly/quarterly/annual) masing-masing berdiri sendiri.
type LeaveCategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryName string    `gorm:"size:100;not null" json:"category_name"`
	CategoryCode string    `gorm:"size:20;unique;not null" json:"category_code"`

	HasMonthlyQuota   bool     `gorm:"not null;default:false" json:"has_monthly_quota"`
	MonthlyQuotaDays  *float64 `gorm:"type:numeric(5,2)" json:"monthly_quota_days,omitempty"`
	HasQuarterlyQuota bool     `gorm:"not null;default:false" json:"has_quarterly_quota"`
	QuarterlyQuotaDays *float64 `gorm:"type:numeric(5,2)" json:"quarterly_quota_days,omitempty"`
	HasAnnualQuota    bool     `gorm:"not null;default:false" json:"has_annual_quota"`
	AnnualQuotaDays   *float64 `gorm:"type:numeric(5,2)" json:"annual_quota_days,omitempty"`

	RequiresApproval bool    `gorm:"not null;default:true" json:"requires_approval"`
	IsPaid           bool    `gorm:"not null;default:true" json:"is_paid"`
	Description      *string `gorm:"type:text" json:"description,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LeaveCategoryModel) TableName() string {
	return "leave_categories"
}

// LeaveBalanceModel: saldo per (user, kategori). Tier yang nonaktif untuk
// kategori tsb bernilai NULL. Comp-off selalu ada, aditif, dan tidak ikut
// reset tahunan. Saldo tidak pernah negatif.
type LeaveBalanceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_user_category" json:"user_id"`
	LeaveCategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_user_category" json:"leave_category_id"`

	MonthlyBalance   *float64 `gorm:"type:numeric(5,2)" json:"monthly_balance,omitempty"`
	QuarterlyBalance *float64 `gorm:"type:numeric(5,2)" json:"quarterly_balance,omitempty"`
	AnnualBalance    *float64 `gorm:"type:numeric(5,2)" json:"annual_balance,omitempty"`
	CompOffBalance   float64  `gorm:"type:numeric(5,2);not null;default:0" json:"comp_off_balance"`

	// format YYYY-MM-DD
	LastResetDate *string `gorm:"type:date" json:"last_reset_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LeaveBalanceModel) TableName() string {
	return "leave_balances"
}

// LeaveRequestModel: pengajuan cuti. Transisi status hanya
// pending→approved atau pending→rejected, sekali dan final.
// total_days dihitung saat dibuat dan tidak pernah dihitung ulang.
type LeaveRequestModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	LeaveCategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"leave_category_id"`

	// format YYYY-MM-DD
	StartDate string `gorm:"type:date;not null" json:"start_date"`
	EndDate   string `gorm:"type:date;not null" json:"end_date"`

	IsHalfDay bool    `gorm:"not null;default:false" json:"is_half_day"`
	TotalDays float64 `gorm:"type:numeric(5,2);not null" json:"total_days"`
	Reason    string  `gorm:"type:text;not null" json:"reason"`

	// pending | approved | rejected
	Status string `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	ReviewedBy  *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `gorm:"" json:"reviewed_at,omitempty"`
	ReviewNotes *string    `gorm:"type:text" json:"review_notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}
