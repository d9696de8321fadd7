// internals/features/leave/service/leave_service.go
package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	leaveDTO "absensiku_backend/internals/features/leave/dto"
	leaveModel "absensiku_backend/internals/features/leave/model"
	notifService "absensiku_backend/internals/features/notifications/service"
	userModel "absensiku_backend/internals/features/users/user/model"
)

/* ==========================
   Errors
========================== */

var (
	ErrInvalidDateRange   = fiber.NewError(fiber.StatusBadRequest, "End date cannot be before start date")
	ErrAttendanceConflict = fiber.NewError(fiber.StatusConflict, "Cannot request leave for dates with existing attendance")
	ErrInvalidCategory    = fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid leave category")
	ErrNoBalance          = fiber.NewError(fiber.StatusUnprocessableEntity, "No leave balance found")

	ErrInsufficientMonthlyQuota   = fiber.NewError(fiber.StatusUnprocessableEntity, "Insufficient monthly quota")
	ErrInsufficientQuarterlyQuota = fiber.NewError(fiber.StatusUnprocessableEntity, "Insufficient quarterly quota")
	ErrInsufficientAnnualQuota    = fiber.NewError(fiber.StatusUnprocessableEntity, "Insufficient annual quota")

	ErrRequestNotFound  = fiber.NewError(fiber.StatusNotFound, "Leave request not found")
	ErrAlreadyProcessed = fiber.NewError(fiber.StatusConflict, "Request already processed")

	ErrNotResetDay = fiber.NewError(fiber.StatusUnprocessableEntity, "Quota reset only runs on December 31")
)

func missingField(name string) error {
	return fiber.NewError(fiber.StatusBadRequest, "Missing required field: "+name)
}

/* ==========================
   Service
========================== */

// LeaveService memegang handle store + clock injectable (lihat AttendanceService).
type LeaveService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewLeaveService(db *gorm.DB) *LeaveService {
	return &LeaveService{DB: db, Now: time.Now}
}

func (s *LeaveService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CalculateLeaveDays: 0.5 untuk half-day, selain itu jumlah hari inklusif
func CalculateLeaveDays(startDate, endDate string, isHalfDay bool) (float64, error) {
	start, err := time.ParseInLocation(constants.DateLayout, startDate, time.Local)
	if err != nil {
		return 0, err
	}
	end, err := time.ParseInLocation(constants.DateLayout, endDate, time.Local)
	if err != nil {
		return 0, err
	}
	if isHalfDay {
		return 0.5, nil
	}
	// Round menahan selisih DST agar hitungan hari kalender tetap benar
	return math.Round(end.Sub(start).Hours()/24) + 1, nil
}

func formatDate(date string) string {
	d, err := time.ParseInLocation(constants.DateLayout, date, time.Local)
	if err != nil {
		return date
	}
	return d.Format("02 Jan 2006")
}

/* ==========================
   Create request
========================== */

func (s *LeaveService) CreateRequest(userID uuid.UUID, req leaveDTO.CreateLeaveRequest) (leaveDTO.CreateLeaveResponse, error) {
	var resp leaveDTO.CreateLeaveResponse

	// 1) field wajib
	if userID == uuid.Nil {
		return resp, missingField("user_id")
	}
	if req.LeaveCategoryID == uuid.Nil {
		return resp, missingField("leave_category_id")
	}
	if strings.TrimSpace(req.StartDate) == "" {
		return resp, missingField("start_date")
	}
	if strings.TrimSpace(req.EndDate) == "" {
		return resp, missingField("end_date")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return resp, missingField("reason")
	}

	// 2) rentang tanggal
	if req.StartDate > req.EndDate {
		return resp, ErrInvalidDateRange
	}

	totalDays, err := CalculateLeaveDays(req.StartDate, req.EndDate, req.IsHalfDay)
	if err != nil {
		return resp, fiber.NewError(fiber.StatusBadRequest, "Format tanggal tidak valid")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// 3) bentrok dengan absensi yang sudah ada
		var overlap int64
		if err := tx.Model(&attendanceModel.AttendanceModel{}).
			Where("user_id = ? AND attendance_date BETWEEN ? AND ? AND punch_in IS NOT NULL",
				userID, req.StartDate, req.EndDate).
			Count(&overlap).Error; err != nil {
			return err
		}
		if overlap > 0 {
			return ErrAttendanceConflict
		}

		// 4) ketersediaan kuota
		if err := s.checkQuotaAvailability(tx, userID, req.LeaveCategoryID, totalDays); err != nil {
			return err
		}

		// 5) simpan request
		m := leaveModel.LeaveRequestModel{
			ID:              uuid.New(),
			UserID:          userID,
			LeaveCategoryID: req.LeaveCategoryID,
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
			IsHalfDay:       req.IsHalfDay,
			TotalDays:       totalDays,
			Reason:          strings.TrimSpace(req.Reason),
			Status:          constants.LeaveStatusPending,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		// 6) notifikasi ke manager (jika ada)
		var u userModel.UserModel
		if err := tx.Select("id", "full_name", "manager_id").First(&u, "id = ?", userID).Error; err != nil {
			return err
		}
		if u.ManagerID != nil {
			actionURL := "manager/leave-approvals?request_id=" + m.ID.String()
			notifService.Create(tx, *u.ManagerID, notifService.TypeGeneral, "New Leave Request",
				u.FullName+" has submitted a new leave request awaiting your approval.", &actionURL)
		}

		resp = leaveDTO.CreateLeaveResponse{RequestID: m.ID, TotalDays: totalDays}
		return nil
	})
	return resp, err
}

/* ==========================
   Quota availability
========================== */

// checkQuotaAvailability: comp-off dicek lebih dulu; bila tidak menutupi,
// SETIAP tier yang aktif harus memuat jumlah penuh yang diminta (dicek
// independen, bukan kumulatif — kebijakan, bukan bug).
func (s *LeaveService) checkQuotaAvailability(tx *gorm.DB, userID, categoryID uuid.UUID, requestedDays float64) error {
	var cat leaveModel.LeaveCategoryModel
	if err := tx.First(&cat, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCategory
		}
		return err
	}
	if !cat.IsActive {
		return ErrInvalidCategory
	}

	// kategori tanpa kuota (mis. comp-off murni) selalu tersedia
	if !cat.HasMonthlyQuota && !cat.HasQuarterlyQuota && !cat.HasAnnualQuota {
		return nil
	}

	var bal leaveModel.LeaveBalanceModel
	if err := tx.Where("user_id = ? AND leave_category_id = ?", userID, categoryID).First(&bal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoBalance
		}
		return err
	}

	// comp-off menutupi seluruh permintaan → tersedia
	if bal.CompOffBalance >= requestedDays {
		return nil
	}

	if cat.HasMonthlyQuota && (bal.MonthlyBalance == nil || *bal.MonthlyBalance < requestedDays) {
		return ErrInsufficientMonthlyQuota
	}
	if cat.HasQuarterlyQuota && (bal.QuarterlyBalance == nil || *bal.QuarterlyBalance < requestedDays) {
		return ErrInsufficientQuarterlyQuota
	}
	if cat.HasAnnualQuota && (bal.AnnualBalance == nil || *bal.AnnualBalance < requestedDays) {
		return ErrInsufficientAnnualQuota
	}

	return nil
}

/* ==========================
   Approve / Reject
========================== */

// Approve: status + potongan kuota + notifikasi dalam satu transaksi;
// gagal di tengah berarti rollback seluruhnya.
func (s *LeaveService) Approve(requestID, reviewerID uuid.UUID, notes *string) error {
	now := s.now()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var req leaveModel.LeaveRequestModel
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != constants.LeaveStatusPending {
			return ErrAlreadyProcessed
		}

		if err := tx.Model(&leaveModel.LeaveRequestModel{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"status":       constants.LeaveStatusApproved,
				"reviewed_by":  reviewerID,
				"reviewed_at":  now,
				"review_notes": notes,
			}).Error; err != nil {
			return err
		}

		if err := s.deductQuota(tx, req.UserID, req.LeaveCategoryID, req.TotalDays); err != nil {
			return err
		}

		notifService.Create(tx, req.UserID, notifService.TypeLeaveApproved, "Leave Approved",
			"Your leave request from "+formatDate(req.StartDate)+" to "+formatDate(req.EndDate)+" has been approved.", nil)

		return nil
	})
}

func (s *LeaveService) Reject(requestID, reviewerID uuid.UUID, notes *string) error {
	now := s.now()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var req leaveModel.LeaveRequestModel
		if err := tx.First(&req, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != constants.LeaveStatusPending {
			return ErrAlreadyProcessed
		}

		if err := tx.Model(&leaveModel.LeaveRequestModel{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"status":       constants.LeaveStatusRejected,
				"reviewed_by":  reviewerID,
				"reviewed_at":  now,
				"review_notes": notes,
			}).Error; err != nil {
			return err
		}

		message := "Your leave request from " + formatDate(req.StartDate) + " to " + formatDate(req.EndDate) + " has been rejected."
		if notes != nil && strings.TrimSpace(*notes) != "" {
			message += " Reason: " + strings.TrimSpace(*notes)
		}
		notifService.Create(tx, req.UserID, notifService.TypeLeaveRejected, "Leave Rejected", message, nil)

		return nil
	})
}

// deductQuota: comp-off dulu. Kalau comp-off menutupi seluruhnya, tier tidak
// disentuh. Kalau tidak, comp-off di-nol-kan dan SETIAP tier aktif yang
// saldonya mencukupi sisa permintaan ikut dipotong (cermin dari asimetri
// pengecekan ketersediaan).
func (s *LeaveService) deductQuota(tx *gorm.DB, userID, categoryID uuid.UUID, days float64) error {
	var bal leaveModel.LeaveBalanceModel
	if err := tx.Where("user_id = ? AND leave_category_id = ?", userID, categoryID).First(&bal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoBalance
		}
		return err
	}

	var cat leaveModel.LeaveCategoryModel
	if err := tx.First(&cat, "id = ?", categoryID).Error; err != nil {
		return err
	}

	balanceScope := tx.Model(&leaveModel.LeaveBalanceModel{}).
		Where("user_id = ? AND leave_category_id = ?", userID, categoryID)

	if bal.CompOffBalance >= days {
		return balanceScope.Update("comp_off_balance", bal.CompOffBalance-days).Error
	}

	remaining := days
	updates := map[string]interface{}{}
	if bal.CompOffBalance > 0 {
		remaining -= bal.CompOffBalance
		updates["comp_off_balance"] = 0
	}

	if cat.HasMonthlyQuota && bal.MonthlyBalance != nil && *bal.MonthlyBalance >= remaining {
		updates["monthly_balance"] = *bal.MonthlyBalance - remaining
	}
	if cat.HasQuarterlyQuota && bal.QuarterlyBalance != nil && *bal.QuarterlyBalance >= remaining {
		updates["quarterly_balance"] = *bal.QuarterlyBalance - remaining
	}
	if cat.HasAnnualQuota && bal.AnnualBalance != nil && *bal.AnnualBalance >= remaining {
		updates["annual_balance"] = *bal.AnnualBalance - remaining
	}

	if len(updates) == 0 {
		return nil
	}
	return balanceScope.Updates(updates).Error
}

/* ==========================
   Comp-off credit
========================== */

func (s *LeaveService) AddCompOff(userID, categoryID uuid.UUID, days float64, reason string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bal leaveModel.LeaveBalanceModel
		if err := tx.Where("user_id = ? AND leave_category_id = ?", userID, categoryID).First(&bal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoBalance
			}
			return err
		}

		if err := tx.Model(&leaveModel.LeaveBalanceModel{}).
			Where("id = ?", bal.ID).
			Update("comp_off_balance", bal.CompOffBalance+days).Error; err != nil {
			return err
		}

		notifService.Create(tx, userID, notifService.TypeCompOffAdded, "Comp-Off Added",
			fmt.Sprintf("%g day(s) comp-off has been added to your account. Reason: %s", days, reason), nil)

		return nil
	})
}

/* ==========================
   Sweep: reset kuota tahunan
========================== */

// ResetAnnualQuotas: no-op di luar 31 Desember. Tier aktif di-reset ke kuota
// kategori; saldo comp-off tidak pernah disentuh.
func (s *LeaveService) ResetAnnualQuotas() error {
	now := s.now()
	if now.Format("01-02") != "12-31" {
		return ErrNotResetDay
	}
	today := now.Format(constants.DateLayout)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var categories []leaveModel.LeaveCategoryModel
		if err := tx.Where("is_active = ?", true).Find(&categories).Error; err != nil {
			return err
		}

		for i := range categories {
			cat := &categories[i]

			updates := map[string]interface{}{}
			if cat.HasMonthlyQuota && cat.MonthlyQuotaDays != nil {
				updates["monthly_balance"] = *cat.MonthlyQuotaDays
			}
			if cat.HasQuarterlyQuota && cat.QuarterlyQuotaDays != nil {
				updates["quarterly_balance"] = *cat.QuarterlyQuotaDays
			}
			if cat.HasAnnualQuota && cat.AnnualQuotaDays != nil {
				updates["annual_balance"] = *cat.AnnualQuotaDays
			}
			if len(updates) == 0 {
				continue
			}
			updates["last_reset_date"] = today

			if err := tx.Model(&leaveModel.LeaveBalanceModel{}).
				Where("leave_category_id = ?", cat.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// kabari para admin (di luar transaksi; best-effort)
	var admins []userModel.UserModel
	if err := s.DB.Select("id").
		Where("role = ? AND is_active = ?", constants.RoleAdmin, true).
		Find(&admins).Error; err == nil {
		for i := range admins {
			notifService.Create(s.DB, admins[i].ID, notifService.TypeGeneral, "Annual Quota Reset",
				"Leave quotas have been successfully reset for the new year.", nil)
		}
	}

	return nil
}

/* ==========================
   Categories & seeding
========================== */

func (s *LeaveService) CreateCategory(m leaveModel.LeaveCategoryModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return s.initializeCategoryForAllUsers(tx, &m)
	})
}

// newBalanceRow: baris saldo awal untuk satu pasangan user x kategori; tier
// aktif diisi penuh, comp-off 0.
func newBalanceRow(cat *leaveModel.LeaveCategoryModel, userID uuid.UUID, lastReset string) leaveModel.LeaveBalanceModel {
	bal := leaveModel.LeaveBalanceModel{
		ID:              uuid.New(),
		UserID:          userID,
		LeaveCategoryID: cat.ID,
		CompOffBalance:  0,
		LastResetDate:   &lastReset,
	}
	if cat.HasMonthlyQuota && cat.MonthlyQuotaDays != nil {
		v := *cat.MonthlyQuotaDays
		bal.MonthlyBalance = &v
	}
	if cat.HasQuarterlyQuota && cat.QuarterlyQuotaDays != nil {
		v := *cat.QuarterlyQuotaDays
		bal.QuarterlyBalance = &v
	}
	if cat.HasAnnualQuota && cat.AnnualQuotaDays != nil {
		v := *cat.AnnualQuotaDays
		bal.AnnualBalance = &v
	}
	return bal
}

// initializeCategoryForAllUsers: satu baris saldo per user aktif; tier aktif
// diisi penuh, comp-off 0, last_reset = 31 Des tahun berjalan.
func (s *LeaveService) initializeCategoryForAllUsers(tx *gorm.DB, cat *leaveModel.LeaveCategoryModel) error {
	lastReset := fmt.Sprintf("%04d-12-31", s.now().Year())

	var users []userModel.UserModel
	if err := tx.Select("id").Where("is_active = ?", true).Find(&users).Error; err != nil {
		return err
	}

	for i := range users {
		bal := newBalanceRow(cat, users[i].ID, lastReset)
		if err := tx.Create(&bal).Error; err != nil {
			return err
		}
	}
	return nil
}

// InitializeBalancesForUser membuat baris saldo untuk user baru pada semua
// kategori aktif. Dipanggil dalam transaksi yang sama dengan insert user
// supaya user baru langsung bisa mengajukan cuti berkuota.
func InitializeBalancesForUser(tx *gorm.DB, userID uuid.UUID, now time.Time) error {
	lastReset := fmt.Sprintf("%04d-12-31", now.Year())

	var categories []leaveModel.LeaveCategoryModel
	if err := tx.Where("is_active = ?", true).Find(&categories).Error; err != nil {
		return err
	}

	for i := range categories {
		bal := newBalanceRow(&categories[i], userID, lastReset)
		if err := tx.Create(&bal).Error; err != nil {
			return err
		}
	}
	return nil
}

/* ==========================
   Reads
========================== */

func (s *LeaveService) GetUserRequests(userID uuid.UUID, status string, limit, offset int) ([]leaveModel.LeaveRequestModel, int64, error) {
	q := s.DB.Model(&leaveModel.LeaveRequestModel{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []leaveModel.LeaveRequestModel
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	return requests, total, err
}

func (s *LeaveService) GetPendingForManager(managerID uuid.UUID) ([]leaveModel.LeaveRequestModel, error) {
	var requests []leaveModel.LeaveRequestModel
	err := s.DB.Model(&leaveModel.LeaveRequestModel{}).
		Joins("JOIN users ON users.id = leave_requests.user_id").
		Where("users.manager_id = ? AND leave_requests.status = ?", managerID, constants.LeaveStatusPending).
		Order("leave_requests.created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (s *LeaveService) GetUserBalances(userID uuid.UUID) ([]leaveModel.LeaveBalanceModel, error) {
	var balances []leaveModel.LeaveBalanceModel
	err := s.DB.Model(&leaveModel.LeaveBalanceModel{}).
		Joins("JOIN leave_categories ON leave_categories.id = leave_balances.leave_category_id").
		Where("leave_balances.user_id = ? AND leave_categories.is_active = ?", userID, true).
		Order("leave_categories.category_name ASC").
		Find(&balances).Error
	return balances, err
}

func (s *LeaveService) GetCategories(activeOnly bool) ([]leaveModel.LeaveCategoryModel, error) {
	q := s.DB.Model(&leaveModel.LeaveCategoryModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var categories []leaveModel.LeaveCategoryModel
	err := q.Order("category_name ASC").Find(&categories).Error
	return categories, err
}
