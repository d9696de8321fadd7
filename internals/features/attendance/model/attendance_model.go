package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceModel: satu baris per (user, tanggal kalender).
// Status hanya ditulis saat punch-out (atau forced punch-out); total_hours
// selalu diturunkan dari punch_in/punch_out.
type AttendanceModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_attendance_user_date" json:"user_id"`

	// format YYYY-MM-DD
	AttendanceDate string `gorm:"type:date;not null;uniqueIndex:uq_attendance_user_date" json:"attendance_date"`

	PunchIn          *time.Time `gorm:"" json:"punch_in,omitempty"`
	PunchInLocation  *string    `gorm:"size:100" json:"punch_in_location,omitempty"`
	PunchOut         *time.Time `gorm:"" json:"punch_out,omitempty"`
	PunchOutLocation *string    `gorm:"size:100" json:"punch_out_location,omitempty"`

	TotalHours *float64 `gorm:"type:numeric(5,2)" json:"total_hours,omitempty"`

	// pending | half_day | short_day | full_day
	Status string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	AutoLoggedOut bool    `gorm:"not null;default:false" json:"auto_logged_out"`
	Notes         *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

// BreakModel: interval istirahat, anak dari AttendanceModel.
// Maksimal satu break terbuka (break_end NULL) per attendance.
type BreakModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AttendanceID uuid.UUID `gorm:"type:uuid;not null;index" json:"attendance_id"`

	BreakStart      time.Time  `gorm:"not null" json:"break_start"`
	BreakEnd        *time.Time `gorm:"" json:"break_end,omitempty"`
	DurationMinutes *int       `gorm:"" json:"duration_minutes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (BreakModel) TableName() string {
	return "breaks"
}

// DailyReportModel: agregat pelanggaran istirahat per (manager, tanggal),
// disimpan sebagai dokumen JSON (daftar pelanggaran hari itu).
type DailyReportModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ManagerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_reports_manager_date" json:"manager_id"`
	ReportDate string    `gorm:"type:date;not null;uniqueIndex:uq_daily_reports_manager_date" json:"report_date"`

	ReportData datatypes.JSON `gorm:"not null" json:"report_data"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyReportModel) TableName() string {
	return "daily_reports"
}
