package dto

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type PunchRequest struct {
	// koordinat "lat,lon" dari klien
	Location string `json:"location" validate:"required,max=100"`
}

type BreakRequest struct {
	AttendanceID uuid.UUID `json:"attendance_id" validate:"required"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type PunchInResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	PunchInTime  time.Time `json:"punch_in_time"`
}

type PunchOutResponse struct {
	TotalHours float64 `json:"total_hours"`
	Status     string  `json:"status"`
}

type StartBreakResponse struct {
	BreakID    uuid.UUID `json:"break_id"`
	BreakStart time.Time `json:"break_start"`
}

type EndBreakResponse struct {
	DurationMinutes int `json:"duration_minutes"`
}

// MonthlySummary: rekap absensi satu bulan (hanya sesi yang sudah ditutup)
type MonthlySummary struct {
	TotalDays        int     `json:"total_days"`
	FullDays         int     `json:"full_days"`
	ShortDays        int     `json:"short_days"`
	HalfDays         int     `json:"half_days"`
	AutoLogouts      int     `json:"auto_logouts"`
	TotalHoursWorked float64 `json:"total_hours_worked"`
	AvgHoursPerDay   float64 `json:"avg_hours_per_day"`
}
