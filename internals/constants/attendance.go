package constants

import "time"

// Kebijakan absensi (aturan 6/8/10 + batas istirahat)
const (
	HalfDayThresholdHours  = 6.0
	ShortDayThresholdHours = 8.0
	AutoLogoutHours        = 10.0
	MaxBreakMinutes        = 75

	AutoLogoutSweepInterval = 15 * time.Minute
	QuotaResetSweepInterval = 24 * time.Hour
)

// Status absensi harian
const (
	AttendanceStatusPending  = "pending"
	AttendanceStatusHalfDay  = "half_day"
	AttendanceStatusShortDay = "short_day"
	AttendanceStatusFullDay  = "full_day"
)

// Status pengajuan cuti
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Format tanggal kalender yang dipakai di kolom date
const DateLayout = "2006-01-02"
