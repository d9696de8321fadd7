package dto

import (
	"strings"

	"github.com/google/uuid"

	leaveModel "absensiku_backend/internals/features/leave/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateLeaveRequest struct {
	LeaveCategoryID uuid.UUID `json:"leave_category_id" validate:"required"`
	StartDate       string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string    `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsHalfDay       bool      `json:"is_half_day"`
	Reason          string    `json:"reason" validate:"required"`
}

type ReviewLeaveRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=500"`
}

type AddCompOffRequest struct {
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	LeaveCategoryID uuid.UUID `json:"leave_category_id" validate:"required"`
	Days            float64   `json:"days" validate:"required,gt=0"`
	Reason          string    `json:"reason" validate:"required"`
}

type CreateLeaveCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,max=100"`
	CategoryCode string `json:"category_code" validate:"required,max=20"`

	HasMonthlyQuota    bool     `json:"has_monthly_quota"`
	MonthlyQuotaDays   *float64 `json:"monthly_quota_days" validate:"omitempty,gte=0"`
	HasQuarterlyQuota  bool     `json:"has_quarterly_quota"`
	QuarterlyQuotaDays *float64 `json:"quarterly_quota_days" validate:"omitempty,gte=0"`
	HasAnnualQuota     bool     `json:"has_annual_quota"`
	AnnualQuotaDays    *float64 `json:"annual_quota_days" validate:"omitempty,gte=0"`

	RequiresApproval *bool   `json:"requires_approval"`
	IsPaid           *bool   `json:"is_paid"`
	Description      *string `json:"description"`
}

func (r *CreateLeaveCategoryRequest) ToModel() leaveModel.LeaveCategoryModel {
	m := leaveModel.LeaveCategoryModel{
		ID:                 uuid.New(),
		CategoryName:       strings.TrimSpace(r.CategoryName),
		CategoryCode:       strings.ToUpper(strings.TrimSpace(r.CategoryCode)),
		HasMonthlyQuota:    r.HasMonthlyQuota,
		MonthlyQuotaDays:   r.MonthlyQuotaDays,
		HasQuarterlyQuota:  r.HasQuarterlyQuota,
		QuarterlyQuotaDays: r.QuarterlyQuotaDays,
		HasAnnualQuota:     r.HasAnnualQuota,
		AnnualQuotaDays:    r.AnnualQuotaDays,
		Description:        r.Description,
		RequiresApproval:   true,
		IsPaid:             true,
		IsActive:           true,
	}
	if r.RequiresApproval != nil {
		m.RequiresApproval = *r.RequiresApproval
	}
	if r.IsPaid != nil {
		m.IsPaid = *r.IsPaid
	}
	return m
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type CreateLeaveResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	TotalDays float64   `json:"total_days"`
}
