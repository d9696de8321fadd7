// internals/features/attendance/service/attendance_service.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	attendanceDTO "absensiku_backend/internals/features/attendance/dto"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	notifService "absensiku_backend/internals/features/notifications/service"
	userModel "absensiku_backend/internals/features/users/user/model"
)

/* ==========================
   Errors (state konflik)
========================== */

var (
	ErrAlreadyPunchedIn  = fiber.NewError(fiber.StatusConflict, "Already punched in today")
	ErrAlreadyCompleted  = fiber.NewError(fiber.StatusConflict, "Attendance already completed for today")
	ErrNoPunchIn         = fiber.NewError(fiber.StatusConflict, "No punch-in record found")
	ErrAlreadyPunchedOut = fiber.NewError(fiber.StatusConflict, "Already punched out")
	ErrBreakInProgress   = fiber.NewError(fiber.StatusConflict, "Break already in progress")
	ErrNoActiveBreak     = fiber.NewError(fiber.StatusConflict, "No active break found")
	ErrAttendanceMissing = fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
)

/* ==========================
   Service
========================== */

// AttendanceService memegang handle store + clock yang bisa di-inject
// (Now diganti di test supaya logika waktu deterministik).
type AttendanceService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db, Now: time.Now}
}

func (s *AttendanceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CalculateStatus menerapkan aturan 6/8/10 pada jam kerja
func CalculateStatus(totalHours float64) string {
	switch {
	case totalHours < constants.HalfDayThresholdHours:
		return constants.AttendanceStatusHalfDay
	case totalHours < constants.ShortDayThresholdHours:
		return constants.AttendanceStatusShortDay
	default:
		return constants.AttendanceStatusFullDay
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// endOfDay: 23:59:59 pada tanggal kalender (zona waktu server)
func endOfDay(date string) (time.Time, error) {
	d, err := time.ParseInLocation(constants.DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(23*time.Hour + 59*time.Minute + 59*time.Second), nil
}

/* ==========================
   Punch in / out
========================== */

// PunchIn membuka sesi absensi hari ini. Sesi lama lintas tanggal yang masih
// terbuka ditutup paksa di 23:59:59 tanggalnya sendiri sebelum sesi baru dibuat.
func (s *AttendanceService) PunchIn(userID uuid.UUID, location string) (attendanceDTO.PunchInResponse, error) {
	now := s.now()
	today := now.Format(constants.DateLayout)

	var resp attendanceDTO.PunchInResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 1) guard record hari ini
		var existing attendanceModel.AttendanceModel
		err := tx.Where("user_id = ? AND attendance_date = ?", userID, today).First(&existing).Error
		switch {
		case err == nil:
			if existing.PunchOut != nil {
				return ErrAlreadyCompleted
			}
			return ErrAlreadyPunchedIn
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		// 2) midnight crossing: tutup SEMUA sesi terbuka dari tanggal sebelumnya
		var stale []attendanceModel.AttendanceModel
		if err := tx.
			Where("user_id = ? AND punch_out IS NULL AND attendance_date < ?", userID, today).
			Find(&stale).Error; err != nil {
			return err
		}
		for i := range stale {
			cutoff, err := endOfDay(stale[i].AttendanceDate)
			if err != nil {
				return err
			}
			if _, err := s.forcePunchOut(tx, &stale[i], cutoff, "System: Midnight crossing", true); err != nil {
				return err
			}
		}

		// 3) buat record baru
		rec := attendanceModel.AttendanceModel{
			ID:              uuid.New(),
			UserID:          userID,
			AttendanceDate:  today,
			PunchIn:         &now,
			PunchInLocation: &location,
			Status:          constants.AttendanceStatusPending,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}

		resp = attendanceDTO.PunchInResponse{AttendanceID: rec.ID, PunchInTime: now}
		return nil
	})
	return resp, err
}

// PunchOut menutup sesi hari ini, menghitung jam kerja, menerapkan aturan
// 6/8/10, lalu menjalankan cek pelanggaran istirahat — semuanya satu transaksi.
func (s *AttendanceService) PunchOut(userID uuid.UUID, location string) (attendanceDTO.PunchOutResponse, error) {
	now := s.now()
	today := now.Format(constants.DateLayout)

	var resp attendanceDTO.PunchOutResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rec attendanceModel.AttendanceModel
		if err := tx.Where("user_id = ? AND attendance_date = ?", userID, today).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoPunchIn
			}
			return err
		}
		if rec.PunchOut != nil {
			return ErrAlreadyPunchedOut
		}
		if rec.PunchIn == nil {
			return ErrNoPunchIn
		}

		hours := now.Sub(*rec.PunchIn).Hours()
		total := round2(hours)
		status := CalculateStatus(hours)

		if err := tx.Model(&attendanceModel.AttendanceModel{}).
			Where("id = ?", rec.ID).
			Updates(map[string]interface{}{
				"punch_out":          now,
				"punch_out_location": location,
				"total_hours":        total,
				"status":             status,
			}).Error; err != nil {
			return err
		}

		if err := s.checkBreakViolations(tx, &rec, now); err != nil {
			return err
		}

		resp = attendanceDTO.PunchOutResponse{TotalHours: total, Status: status}
		return nil
	})
	return resp, err
}

// forcePunchOut menutup paksa sebuah sesi (auto-logout / midnight crossing)
// pada waktu yang ditentukan, bukan waktu sweep. Guard punch_out IS NULL
// membuat punch-out manual yang menyelip di antara pembacaan dan penutupan
// tidak tertimpa; return false berarti sesi sudah keburu ditutup pihak lain.
func (s *AttendanceService) forcePunchOut(tx *gorm.DB, rec *attendanceModel.AttendanceModel, punchOutAt time.Time, notes string, autoLoggedOut bool) (bool, error) {
	if rec.PunchIn == nil {
		return false, nil
	}
	hours := punchOutAt.Sub(*rec.PunchIn).Hours()
	res := tx.Model(&attendanceModel.AttendanceModel{}).
		Where("id = ? AND punch_out IS NULL", rec.ID).
		Updates(map[string]interface{}{
			"punch_out":       punchOutAt,
			"total_hours":     round2(hours),
			"status":          CalculateStatus(hours),
			"auto_logged_out": autoLoggedOut,
			"notes":           notes,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

/* ==========================
   Breaks
========================== */

// StartBreak membuka break pada record absensi milik user sendiri. Record
// milik user lain diperlakukan sama dengan record yang tidak ada.
func (s *AttendanceService) StartBreak(userID, attendanceID uuid.UUID) (attendanceDTO.StartBreakResponse, error) {
	now := s.now()

	var resp attendanceDTO.StartBreakResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rec attendanceModel.AttendanceModel
		if err := tx.First(&rec, "id = ?", attendanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAttendanceMissing
			}
			return err
		}
		if rec.UserID != userID {
			return ErrAttendanceMissing
		}

		var open attendanceModel.BreakModel
		err := tx.Where("attendance_id = ? AND break_end IS NULL", attendanceID).First(&open).Error
		if err == nil {
			return ErrBreakInProgress
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		b := attendanceModel.BreakModel{
			ID:           uuid.New(),
			AttendanceID: attendanceID,
			BreakStart:   now,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}

		resp = attendanceDTO.StartBreakResponse{BreakID: b.ID, BreakStart: now}
		return nil
	})
	return resp, err
}

func (s *AttendanceService) EndBreak(userID, attendanceID uuid.UUID) (attendanceDTO.EndBreakResponse, error) {
	now := s.now()

	var resp attendanceDTO.EndBreakResponse
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rec attendanceModel.AttendanceModel
		if err := tx.First(&rec, "id = ?", attendanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAttendanceMissing
			}
			return err
		}
		if rec.UserID != userID {
			return ErrAttendanceMissing
		}

		var open attendanceModel.BreakModel
		if err := tx.Where("attendance_id = ? AND break_end IS NULL", attendanceID).First(&open).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveBreak
			}
			return err
		}

		duration := int(math.Round(now.Sub(open.BreakStart).Minutes()))
		if err := tx.Model(&attendanceModel.BreakModel{}).
			Where("id = ?", open.ID).
			Updates(map[string]interface{}{
				"break_end":        now,
				"duration_minutes": duration,
			}).Error; err != nil {
			return err
		}

		resp = attendanceDTO.EndBreakResponse{DurationMinutes: duration}
		return nil
	})
	return resp, err
}

/* ==========================
   Break violation (> 75 menit)
========================== */

type breakViolationEntry struct {
	UserID            uuid.UUID `json:"user_id"`
	AttendanceID      uuid.UUID `json:"attendance_id"`
	TotalBreakMinutes int       `json:"total_break_minutes"`
	Timestamp         string    `json:"timestamp"`
}

type dailyReportData struct {
	Violations []breakViolationEntry `json:"violations"`
}

// checkBreakViolations menjumlahkan menit break yang sudah ditutup; bila
// melewati batas dan user punya manager, kirim notifikasi + catat ke laporan
// harian manager (dalam transaksi yang sama dengan punch-out).
func (s *AttendanceService) checkBreakViolations(tx *gorm.DB, rec *attendanceModel.AttendanceModel, now time.Time) error {
	var totalBreak int
	if err := tx.Model(&attendanceModel.BreakModel{}).
		Where("attendance_id = ? AND break_end IS NOT NULL", rec.ID).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Scan(&totalBreak).Error; err != nil {
		return err
	}

	if totalBreak <= constants.MaxBreakMinutes {
		return nil
	}

	var u userModel.UserModel
	if err := tx.Select("id", "full_name", "manager_id").First(&u, "id = ?", rec.UserID).Error; err != nil {
		return err
	}
	if u.ManagerID == nil {
		return nil
	}

	message := fmt.Sprintf(
		"%s exceeded the break time limit. Total break time: %d minutes (Limit: %d minutes)",
		u.FullName, totalBreak, constants.MaxBreakMinutes,
	)
	actionURL := "manager/attendance-details?id=" + rec.ID.String()
	notifService.Create(tx, *u.ManagerID, notifService.TypeBreakViolation, "Break Time Violation", message, &actionURL)

	return s.flagForDailyReport(tx, *u.ManagerID, rec.UserID, totalBreak, rec.ID, now)
}

func (s *AttendanceService) flagForDailyReport(tx *gorm.DB, managerID, userID uuid.UUID, totalBreakMinutes int, attendanceID uuid.UUID, now time.Time) error {
	reportDate := now.Format(constants.DateLayout)
	entry := breakViolationEntry{
		UserID:            userID,
		AttendanceID:      attendanceID,
		TotalBreakMinutes: totalBreakMinutes,
		Timestamp:         now.Format("2006-01-02 15:04:05"),
	}

	var report attendanceModel.DailyReportModel
	err := tx.Where("manager_id = ? AND report_date = ?", managerID, reportDate).First(&report).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		payload, err := json.Marshal(dailyReportData{Violations: []breakViolationEntry{entry}})
		if err != nil {
			return err
		}
		report = attendanceModel.DailyReportModel{
			ID:         uuid.New(),
			ManagerID:  managerID,
			ReportDate: reportDate,
			ReportData: payload,
		}
		return tx.Create(&report).Error
	case err != nil:
		return err
	}

	var data dailyReportData
	if len(report.ReportData) > 0 {
		if err := json.Unmarshal(report.ReportData, &data); err != nil {
			// dokumen korup: mulai ulang daripada menggagalkan punch-out
			log.Printf("[REPORT WARN] report_data korup manager=%s date=%s: %v", managerID, reportDate, err)
			data = dailyReportData{}
		}
	}
	data.Violations = append(data.Violations, entry)

	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return tx.Model(&attendanceModel.DailyReportModel{}).
		Where("id = ?", report.ID).
		Update("report_data", payload).Error
}

/* ==========================
   Sweep: auto logout >= 10 jam
========================== */

// AutoLogoutLongSessions menutup paksa sesi terbuka yang sudah berjalan
// >= 10 jam, tepat di punch_in + 10 jam (bukan waktu sweep). Idempotent:
// run berikutnya hanya mengambil sesi terbuka yang baru melewati ambang.
func (s *AttendanceService) AutoLogoutLongSessions() (int, error) {
	now := s.now()
	limit := time.Duration(constants.AutoLogoutHours * float64(time.Hour))

	var open []attendanceModel.AttendanceModel
	if err := s.DB.Where("punch_out IS NULL AND punch_in IS NOT NULL").Find(&open).Error; err != nil {
		return 0, err
	}

	count := 0
	for i := range open {
		rec := &open[i]
		if now.Sub(*rec.PunchIn) < limit {
			continue
		}

		cutoff := rec.PunchIn.Add(limit)
		var closed bool
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			var ferr error
			closed, ferr = s.forcePunchOut(tx, rec, cutoff, "Auto-logout: 10 hour limit reached", true)
			if ferr != nil {
				return ferr
			}
			if !closed {
				// sesi keburu ditutup manual setelah daftar open dibaca
				return nil
			}
			notifService.Create(tx, rec.UserID, notifService.TypeAutoLogout, "Auto Logout",
				"You were automatically logged out after 10 hours of active session.", nil)
			return nil
		})
		if err != nil {
			log.Printf("[SWEEP ERROR] auto-logout attendance=%s: %v", rec.ID, err)
			continue
		}
		if !closed {
			continue
		}

		count++
		log.Printf("[SWEEP] auto-logout user=%s attendance=%s punch_in=%s", rec.UserID, rec.ID, rec.PunchIn.Format(time.RFC3339))
	}
	return count, nil
}

/* ==========================
   Reads
========================== */

func (s *AttendanceService) GetTodayAttendance(userID uuid.UUID) (*attendanceModel.AttendanceModel, error) {
	today := s.now().Format(constants.DateLayout)

	var rec attendanceModel.AttendanceModel
	if err := s.DB.Where("user_id = ? AND attendance_date = ?", userID, today).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *AttendanceService) GetBreaks(attendanceID uuid.UUID) ([]attendanceModel.BreakModel, error) {
	var breaks []attendanceModel.BreakModel
	err := s.DB.Where("attendance_id = ?", attendanceID).Order("break_start ASC").Find(&breaks).Error
	return breaks, err
}

// HistoryItem: satu baris riwayat + total menit break yang sudah ditutup
type HistoryItem struct {
	attendanceModel.AttendanceModel
	TotalBreakMinutes int `json:"total_break_minutes"`
}

func (s *AttendanceService) GetUserHistory(userID uuid.UUID, limit, offset int) ([]HistoryItem, int64, error) {
	q := s.DB.Model(&attendanceModel.AttendanceModel{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []attendanceModel.AttendanceModel
	if err := q.Order("attendance_date DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	items := make([]HistoryItem, 0, len(records))
	if len(records) == 0 {
		return items, total, nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	for i := range records {
		ids = append(ids, records[i].ID)
	}

	type breakSum struct {
		AttendanceID uuid.UUID
		Total        int
	}
	var sums []breakSum
	if err := s.DB.Model(&attendanceModel.BreakModel{}).
		Select("attendance_id, COALESCE(SUM(duration_minutes), 0) AS total").
		Where("attendance_id IN ? AND break_end IS NOT NULL", ids).
		Group("attendance_id").
		Scan(&sums).Error; err != nil {
		return nil, 0, err
	}

	byID := make(map[uuid.UUID]int, len(sums))
	for _, bs := range sums {
		byID[bs.AttendanceID] = bs.Total
	}
	for i := range records {
		items = append(items, HistoryItem{
			AttendanceModel:   records[i],
			TotalBreakMinutes: byID[records[i].ID],
		})
	}
	return items, total, nil
}

func (s *AttendanceService) GetMonthlySummary(userID uuid.UUID, month, year int) (attendanceDTO.MonthlySummary, error) {
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	from := firstOfMonth.Format(constants.DateLayout)
	to := firstOfMonth.AddDate(0, 1, 0).Format(constants.DateLayout)

	var summary attendanceDTO.MonthlySummary
	err := s.DB.Model(&attendanceModel.AttendanceModel{}).
		Select(`
			COUNT(*) AS total_days,
			COALESCE(SUM(CASE WHEN status = 'full_day' THEN 1 ELSE 0 END), 0) AS full_days,
			COALESCE(SUM(CASE WHEN status = 'short_day' THEN 1 ELSE 0 END), 0) AS short_days,
			COALESCE(SUM(CASE WHEN status = 'half_day' THEN 1 ELSE 0 END), 0) AS half_days,
			COALESCE(SUM(CASE WHEN auto_logged_out THEN 1 ELSE 0 END), 0) AS auto_logouts,
			COALESCE(SUM(total_hours), 0) AS total_hours_worked,
			COALESCE(AVG(total_hours), 0) AS avg_hours_per_day`).
		Where("user_id = ? AND attendance_date >= ? AND attendance_date < ? AND punch_out IS NOT NULL", userID, from, to).
		Scan(&summary).Error
	return summary, err
}
