package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"absensiku_backend/internals/constants"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	notifModel "absensiku_backend/internals/features/notifications/model"
	userModel "absensiku_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// satu koneksi: :memory: per koneksi adalah database terpisah
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceModel{},
		&attendanceModel.BreakModel{},
		&attendanceModel.DailyReportModel{},
		&notifModel.NotificationModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role string, managerID *uuid.UUID) uuid.UUID {
	t.Helper()
	userSeq++

	u := userModel.UserModel{
		ID:         uuid.New(),
		EmployeeID: fmt.Sprintf("EMP%03d", userSeq),
		Email:      fmt.Sprintf("user%d@absensiku.id", userSeq),
		Password:   "x",
		FullName:   fmt.Sprintf("User %d", userSeq),
		Role:       role,
		IsManager:  role == constants.RoleManager,
		ManagerID:  managerID,
		IsActive:   true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func newServiceAt(db *gorm.DB, at time.Time) (*AttendanceService, *time.Time) {
	clock := at
	svc := NewAttendanceService(db)
	svc.Now = func() time.Time { return clock }
	return svc, &clock
}

func TestCalculateStatus(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, constants.AttendanceStatusHalfDay},
		{5.99, constants.AttendanceStatusHalfDay},
		{6.0, constants.AttendanceStatusShortDay},
		{7.99, constants.AttendanceStatusShortDay},
		{8.0, constants.AttendanceStatusFullDay},
		{8.01, constants.AttendanceStatusFullDay},
		{12, constants.AttendanceStatusFullDay},
	}
	for _, tt := range tests {
		if got := CalculateStatus(tt.hours); got != tt.want {
			t.Errorf("CalculateStatus(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestPunchInCreatesPendingRecord(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, _ := newServiceAt(db, start)

	resp, err := svc.PunchIn(userID, "-6.2,106.8")
	if err != nil {
		t.Fatalf("PunchIn: %v", err)
	}

	var rec attendanceModel.AttendanceModel
	if err := db.First(&rec, "id = ?", resp.AttendanceID).Error; err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.Status != constants.AttendanceStatusPending {
		t.Errorf("status = %q, want pending", rec.Status)
	}
	if rec.AttendanceDate != "2025-03-10" {
		t.Errorf("attendance_date = %q", rec.AttendanceDate)
	}
	if rec.PunchOut != nil {
		t.Error("punch_out should be nil")
	}
}

func TestPunchInTwiceSameDay(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	if _, err := svc.PunchIn(userID, "loc"); err != nil {
		t.Fatalf("first PunchIn: %v", err)
	}
	if _, err := svc.PunchIn(userID, "loc"); !errors.Is(err, ErrAlreadyPunchedIn) {
		t.Fatalf("second PunchIn err = %v, want ErrAlreadyPunchedIn", err)
	}

	*clock = start.Add(8 * time.Hour)
	if _, err := svc.PunchOut(userID, "loc"); err != nil {
		t.Fatalf("PunchOut: %v", err)
	}
	if _, err := svc.PunchIn(userID, "loc"); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("PunchIn after completion err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestPunchOutWithoutPunchIn(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	svc, _ := newServiceAt(db, time.Date(2025, 3, 10, 17, 0, 0, 0, time.Local))
	if _, err := svc.PunchOut(userID, "loc"); !errors.Is(err, ErrNoPunchIn) {
		t.Fatalf("err = %v, want ErrNoPunchIn", err)
	}
}

func TestPunchOutClassification(t *testing.T) {
	tests := []struct {
		name       string
		worked     time.Duration
		wantStatus string
		wantHours  float64
	}{
		{"under six hours", 5*time.Hour + 59*time.Minute, constants.AttendanceStatusHalfDay, 5.98},
		{"exactly six hours", 6 * time.Hour, constants.AttendanceStatusShortDay, 6.00},
		{"under eight hours", 7*time.Hour + 59*time.Minute, constants.AttendanceStatusShortDay, 7.98},
		{"exactly eight hours", 8 * time.Hour, constants.AttendanceStatusFullDay, 8.00},
		{"long day", 9*time.Hour + 30*time.Minute, constants.AttendanceStatusFullDay, 9.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			userID := seedUser(t, db, constants.RoleEmployee, nil)

			start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
			svc, clock := newServiceAt(db, start)

			if _, err := svc.PunchIn(userID, "loc"); err != nil {
				t.Fatalf("PunchIn: %v", err)
			}

			*clock = start.Add(tt.worked)
			resp, err := svc.PunchOut(userID, "loc")
			if err != nil {
				t.Fatalf("PunchOut: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if resp.TotalHours != tt.wantHours {
				t.Errorf("total_hours = %v, want %v", resp.TotalHours, tt.wantHours)
			}
		})
	}
}

func TestDoublePunchOut(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	if _, err := svc.PunchIn(userID, "loc"); err != nil {
		t.Fatalf("PunchIn: %v", err)
	}
	*clock = start.Add(8 * time.Hour)
	if _, err := svc.PunchOut(userID, "loc"); err != nil {
		t.Fatalf("PunchOut: %v", err)
	}
	if _, err := svc.PunchOut(userID, "loc"); !errors.Is(err, ErrAlreadyPunchedOut) {
		t.Fatalf("err = %v, want ErrAlreadyPunchedOut", err)
	}
}

func TestBreakLifecycle(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	punch, err := svc.PunchIn(userID, "loc")
	if err != nil {
		t.Fatalf("PunchIn: %v", err)
	}

	if _, err := svc.EndBreak(userID, punch.AttendanceID); !errors.Is(err, ErrNoActiveBreak) {
		t.Fatalf("EndBreak without break err = %v, want ErrNoActiveBreak", err)
	}

	*clock = start.Add(3 * time.Hour)
	if _, err := svc.StartBreak(userID, punch.AttendanceID); err != nil {
		t.Fatalf("StartBreak: %v", err)
	}
	if _, err := svc.StartBreak(userID, punch.AttendanceID); !errors.Is(err, ErrBreakInProgress) {
		t.Fatalf("second StartBreak err = %v, want ErrBreakInProgress", err)
	}

	*clock = start.Add(3*time.Hour + 37*time.Minute)
	end, err := svc.EndBreak(userID, punch.AttendanceID)
	if err != nil {
		t.Fatalf("EndBreak: %v", err)
	}
	if end.DurationMinutes != 37 {
		t.Errorf("duration = %d, want 37", end.DurationMinutes)
	}

	if _, err := svc.StartBreak(userID, uuid.New()); !errors.Is(err, ErrAttendanceMissing) {
		t.Fatalf("StartBreak on unknown attendance err = %v, want ErrAttendanceMissing", err)
	}
}

func TestBreakRequiresOwnAttendance(t *testing.T) {
	db := newTestDB(t)
	ownerID := seedUser(t, db, constants.RoleEmployee, nil)
	otherID := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	punch, err := svc.PunchIn(ownerID, "loc")
	if err != nil {
		t.Fatalf("PunchIn: %v", err)
	}

	// user lain tidak boleh membuka break di record milik orang lain
	*clock = start.Add(2 * time.Hour)
	if _, err := svc.StartBreak(otherID, punch.AttendanceID); !errors.Is(err, ErrAttendanceMissing) {
		t.Fatalf("StartBreak by other user err = %v, want ErrAttendanceMissing", err)
	}

	if _, err := svc.StartBreak(ownerID, punch.AttendanceID); err != nil {
		t.Fatalf("StartBreak by owner: %v", err)
	}

	// juga tidak boleh menutup break milik orang lain
	*clock = start.Add(2*time.Hour + 20*time.Minute)
	if _, err := svc.EndBreak(otherID, punch.AttendanceID); !errors.Is(err, ErrAttendanceMissing) {
		t.Fatalf("EndBreak by other user err = %v, want ErrAttendanceMissing", err)
	}

	end, err := svc.EndBreak(ownerID, punch.AttendanceID)
	if err != nil {
		t.Fatalf("EndBreak by owner: %v", err)
	}
	if end.DurationMinutes != 20 {
		t.Errorf("duration = %d, want 20", end.DurationMinutes)
	}
}

func takeBreak(t *testing.T, svc *AttendanceService, clock *time.Time, userID, attendanceID uuid.UUID, d time.Duration) {
	t.Helper()
	if _, err := svc.StartBreak(userID, attendanceID); err != nil {
		t.Fatalf("StartBreak: %v", err)
	}
	*clock = clock.Add(d)
	if _, err := svc.EndBreak(userID, attendanceID); err != nil {
		t.Fatalf("EndBreak: %v", err)
	}
}

func TestBreakViolationNotifiesManager(t *testing.T) {
	db := newTestDB(t)
	managerID := seedUser(t, db, constants.RoleManager, nil)
	userID := seedUser(t, db, constants.RoleEmployee, &managerID)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	punch, err := svc.PunchIn(userID, "loc")
	if err != nil {
		t.Fatalf("PunchIn: %v", err)
	}

	*clock = start.Add(3 * time.Hour)
	takeBreak(t, svc, clock, userID, punch.AttendanceID, 40*time.Minute)
	takeBreak(t, svc, clock, userID, punch.AttendanceID, 36*time.Minute) // total 76 > 75

	*clock = start.Add(8 * time.Hour)
	if _, err := svc.PunchOut(userID, "loc"); err != nil {
		t.Fatalf("PunchOut: %v", err)
	}

	var notifs []notifModel.NotificationModel
	if err := db.Where("user_id = ?", managerID).Find(&notifs).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	if len(notifs) != 1 {
		t.Fatalf("manager notifications = %d, want 1", len(notifs))
	}
	if notifs[0].Type != "break_violation" {
		t.Errorf("type = %q, want break_violation", notifs[0].Type)
	}
	if notifs[0].ActionURL == nil || *notifs[0].ActionURL != "manager/attendance-details?id="+punch.AttendanceID.String() {
		t.Errorf("action_url = %v", notifs[0].ActionURL)
	}

	var report attendanceModel.DailyReportModel
	if err := db.Where("manager_id = ? AND report_date = ?", managerID, "2025-03-10").First(&report).Error; err != nil {
		t.Fatalf("daily report missing: %v", err)
	}
}

func TestBreakAtLimitIsNotViolation(t *testing.T) {
	db := newTestDB(t)
	managerID := seedUser(t, db, constants.RoleManager, nil)
	userID := seedUser(t, db, constants.RoleEmployee, &managerID)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	punch, err := svc.PunchIn(userID, "loc")
	if err != nil {
		t.Fatalf("PunchIn: %v", err)
	}

	*clock = start.Add(3 * time.Hour)
	takeBreak(t, svc, clock, userID, punch.AttendanceID, 75*time.Minute)

	*clock = start.Add(8 * time.Hour)
	if _, err := svc.PunchOut(userID, "loc"); err != nil {
		t.Fatalf("PunchOut: %v", err)
	}

	var count int64
	if err := db.Model(&notifModel.NotificationModel{}).Where("user_id = ?", managerID).Count(&count).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if count != 0 {
		t.Errorf("manager notifications = %d, want 0", count)
	}
}

func TestDailyReportAccumulatesViolations(t *testing.T) {
	db := newTestDB(t)
	managerID := seedUser(t, db, constants.RoleManager, nil)
	first := seedUser(t, db, constants.RoleEmployee, &managerID)
	second := seedUser(t, db, constants.RoleEmployee, &managerID)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	for _, userID := range []uuid.UUID{first, second} {
		*clock = start
		punch, err := svc.PunchIn(userID, "loc")
		if err != nil {
			t.Fatalf("PunchIn: %v", err)
		}
		*clock = start.Add(3 * time.Hour)
		takeBreak(t, svc, clock, userID, punch.AttendanceID, 80*time.Minute)
		*clock = start.Add(8 * time.Hour)
		if _, err := svc.PunchOut(userID, "loc"); err != nil {
			t.Fatalf("PunchOut: %v", err)
		}
	}

	var reports []attendanceModel.DailyReportModel
	if err := db.Where("manager_id = ?", managerID).Find(&reports).Error; err != nil {
		t.Fatalf("load reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("reports = %d, want 1 (satu dokumen per manager per hari)", len(reports))
	}

	var data dailyReportData
	if err := json.Unmarshal(reports[0].ReportData, &data); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(data.Violations) != 2 {
		t.Errorf("violations = %d, want 2", len(data.Violations))
	}
}

func TestAutoLogoutSweep(t *testing.T) {
	db := newTestDB(t)
	longUser := seedUser(t, db, constants.RoleEmployee, nil)
	shortUser := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	longPunch, err := svc.PunchIn(longUser, "loc")
	if err != nil {
		t.Fatalf("PunchIn long: %v", err)
	}

	*clock = start.Add(2 * time.Hour) // 09:00
	if _, err := svc.PunchIn(shortUser, "loc"); err != nil {
		t.Fatalf("PunchIn short: %v", err)
	}

	// 17:30: long sudah 10.5 jam, short baru 8.5 jam
	*clock = start.Add(10*time.Hour + 30*time.Minute)
	count, err := svc.AutoLogoutLongSessions()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if count != 1 {
		t.Fatalf("closed = %d, want 1", count)
	}

	var rec attendanceModel.AttendanceModel
	if err := db.First(&rec, "id = ?", longPunch.AttendanceID).Error; err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.PunchOut == nil {
		t.Fatal("punch_out nil after sweep")
	}
	// ditutup tepat di punch_in + 10 jam, bukan waktu sweep
	if want := start.Add(10 * time.Hour); !rec.PunchOut.Equal(want) {
		t.Errorf("punch_out = %v, want %v", rec.PunchOut, want)
	}
	if rec.TotalHours == nil || *rec.TotalHours != 10.0 {
		t.Errorf("total_hours = %v, want 10.0", rec.TotalHours)
	}
	if rec.Status != constants.AttendanceStatusFullDay {
		t.Errorf("status = %q, want full_day", rec.Status)
	}
	if !rec.AutoLoggedOut {
		t.Error("auto_logged_out should be true")
	}

	var notifCount int64
	if err := db.Model(&notifModel.NotificationModel{}).
		Where("user_id = ? AND type = ?", longUser, "auto_logout").
		Count(&notifCount).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if notifCount != 1 {
		t.Errorf("auto_logout notifications = %d, want 1", notifCount)
	}

	// idempotent: run kedua tidak menutup apa pun lagi
	count, err = svc.AutoLogoutLongSessions()
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if count != 0 {
		t.Errorf("second sweep closed = %d, want 0", count)
	}
}

func TestForceCloseSkipsManuallyClosedSession(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	punch, err := svc.PunchIn(userID, "loc")
	if err != nil {
		t.Fatalf("PunchIn: %v", err)
	}

	// snapshot record saat masih terbuka, seperti yang dibaca sweep
	var snapshot attendanceModel.AttendanceModel
	if err := db.First(&snapshot, "id = ?", punch.AttendanceID).Error; err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	// punch-out manual menyelip setelah snapshot dibaca
	*clock = start.Add(10*time.Hour + 30*time.Minute)
	if _, err := svc.PunchOut(userID, "loc"); err != nil {
		t.Fatalf("PunchOut: %v", err)
	}

	closed, err := svc.forcePunchOut(db, &snapshot, start.Add(10*time.Hour), "Auto-logout: 10 hour limit reached", true)
	if err != nil {
		t.Fatalf("forcePunchOut: %v", err)
	}
	if closed {
		t.Error("closed = true, sesi yang sudah ditutup tidak boleh ditimpa")
	}

	var rec attendanceModel.AttendanceModel
	if err := db.First(&rec, "id = ?", punch.AttendanceID).Error; err != nil {
		t.Fatalf("load record: %v", err)
	}
	if rec.PunchOut == nil || !rec.PunchOut.Equal(start.Add(10*time.Hour+30*time.Minute)) {
		t.Errorf("punch_out = %v, want hasil punch-out manual", rec.PunchOut)
	}
	if rec.TotalHours == nil || *rec.TotalHours != 10.5 {
		t.Errorf("total_hours = %v, want 10.5", rec.TotalHours)
	}
	if rec.AutoLoggedOut {
		t.Error("auto_logged_out should stay false")
	}
}

func TestMidnightCrossingClosedOnNextPunchIn(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	yesterday := time.Date(2025, 3, 10, 21, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, yesterday)

	stale, err := svc.PunchIn(userID, "loc")
	if err != nil {
		t.Fatalf("PunchIn day 1: %v", err)
	}

	*clock = time.Date(2025, 3, 11, 8, 0, 0, 0, time.Local)
	fresh, err := svc.PunchIn(userID, "loc")
	if err != nil {
		t.Fatalf("PunchIn day 2: %v", err)
	}

	var old attendanceModel.AttendanceModel
	if err := db.First(&old, "id = ?", stale.AttendanceID).Error; err != nil {
		t.Fatalf("load stale record: %v", err)
	}
	if old.PunchOut == nil {
		t.Fatal("stale session not closed")
	}
	if want := time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local); !old.PunchOut.Equal(want) {
		t.Errorf("punch_out = %v, want %v", old.PunchOut, want)
	}
	if old.Notes == nil || *old.Notes != "System: Midnight crossing" {
		t.Errorf("notes = %v", old.Notes)
	}
	if !old.AutoLoggedOut {
		t.Error("auto_logged_out should be true")
	}
	// 21:00 → 23:59:59 adalah ~3 jam → half_day
	if old.Status != constants.AttendanceStatusHalfDay {
		t.Errorf("status = %q, want half_day", old.Status)
	}

	var current attendanceModel.AttendanceModel
	if err := db.First(&current, "id = ?", fresh.AttendanceID).Error; err != nil {
		t.Fatalf("load new record: %v", err)
	}
	if current.PunchOut != nil {
		t.Error("new session should be open")
	}
	if current.AttendanceDate != "2025-03-11" {
		t.Errorf("attendance_date = %q", current.AttendanceDate)
	}
}

func TestMonthlySummary(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	svc, clock := newServiceAt(db, time.Time{})

	days := []struct {
		day    int
		worked time.Duration
	}{
		{3, 8 * time.Hour},
		{4, 7 * time.Hour},
		{5, 4 * time.Hour},
		{6, 9 * time.Hour},
	}
	for _, d := range days {
		start := time.Date(2025, 3, d.day, 9, 0, 0, 0, time.Local)
		*clock = start
		if _, err := svc.PunchIn(userID, "loc"); err != nil {
			t.Fatalf("PunchIn day %d: %v", d.day, err)
		}
		*clock = start.Add(d.worked)
		if _, err := svc.PunchOut(userID, "loc"); err != nil {
			t.Fatalf("PunchOut day %d: %v", d.day, err)
		}
	}

	// sesi terbuka di bulan yang sama tidak ikut dihitung
	*clock = time.Date(2025, 3, 7, 9, 0, 0, 0, time.Local)
	if _, err := svc.PunchIn(userID, "loc"); err != nil {
		t.Fatalf("PunchIn open day: %v", err)
	}

	summary, err := svc.GetMonthlySummary(userID, 3, 2025)
	if err != nil {
		t.Fatalf("GetMonthlySummary: %v", err)
	}
	if summary.TotalDays != 4 {
		t.Errorf("total_days = %d, want 4", summary.TotalDays)
	}
	if summary.FullDays != 2 {
		t.Errorf("full_days = %d, want 2", summary.FullDays)
	}
	if summary.ShortDays != 1 {
		t.Errorf("short_days = %d, want 1", summary.ShortDays)
	}
	if summary.HalfDays != 1 {
		t.Errorf("half_days = %d, want 1", summary.HalfDays)
	}
	if summary.TotalHoursWorked != 28.0 {
		t.Errorf("total_hours_worked = %v, want 28.0", summary.TotalHoursWorked)
	}
}

func TestGetUserHistoryIncludesBreakTotals(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db, constants.RoleEmployee, nil)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	svc, clock := newServiceAt(db, start)

	punch, err := svc.PunchIn(userID, "loc")
	if err != nil {
		t.Fatalf("PunchIn: %v", err)
	}
	*clock = start.Add(3 * time.Hour)
	takeBreak(t, svc, clock, userID, punch.AttendanceID, 30*time.Minute)
	*clock = start.Add(8 * time.Hour)
	if _, err := svc.PunchOut(userID, "loc"); err != nil {
		t.Fatalf("PunchOut: %v", err)
	}

	items, total, err := svc.GetUserHistory(userID, 10, 0)
	if err != nil {
		t.Fatalf("GetUserHistory: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("total = %d, items = %d, want 1/1", total, len(items))
	}
	if items[0].TotalBreakMinutes != 30 {
		t.Errorf("total_break_minutes = %d, want 30", items[0].TotalBreakMinutes)
	}
}
