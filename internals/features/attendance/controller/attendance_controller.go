// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "absensiku_backend/internals/features/attendance/dto"
	attendanceService "absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
)

type AttendanceController struct {
	Service  *attendanceService.AttendanceService
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		Service:  attendanceService.NewAttendanceService(db),
		Validate: validator.New(),
	}
}

// handleEngineError: error bisnis (fiber.Error) diteruskan apa adanya,
// error store diturunkan jadi 500 opaque (detail hanya di log server).
func handleEngineError(c *fiber.Ctx, op string, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return helper.Error(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan sistem")
}

// POST /api/u/attendance/punch-in
func (h *AttendanceController) PunchIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req attendanceDTO.PunchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Location = strings.TrimSpace(req.Location)
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := h.Service.PunchIn(userID, req.Location)
	if err != nil {
		return handleEngineError(c, "punch-in", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Punched in successfully", resp)
}

// POST /api/u/attendance/punch-out
func (h *AttendanceController) PunchOut(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req attendanceDTO.PunchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Location = strings.TrimSpace(req.Location)
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := h.Service.PunchOut(userID, req.Location)
	if err != nil {
		return handleEngineError(c, "punch-out", err)
	}

	return helper.Success(c, "Punched out successfully", resp)
}

// POST /api/u/attendance/breaks/start
func (h *AttendanceController) StartBreak(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req attendanceDTO.BreakRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := h.Service.StartBreak(userID, req.AttendanceID)
	if err != nil {
		return handleEngineError(c, "start-break", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Break started", resp)
}

// POST /api/u/attendance/breaks/end
func (h *AttendanceController) EndBreak(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req attendanceDTO.BreakRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := h.Service.EndBreak(userID, req.AttendanceID)
	if err != nil {
		return handleEngineError(c, "end-break", err)
	}

	return helper.Success(c, "Break ended", resp)
}

// GET /api/u/attendance/today
func (h *AttendanceController) Today(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rec, err := h.Service.GetTodayAttendance(userID)
	if err != nil {
		return handleEngineError(c, "today-attendance", err)
	}
	if rec == nil {
		return helper.Success(c, "Belum ada absensi hari ini", nil)
	}

	breaks, err := h.Service.GetBreaks(rec.ID)
	if err != nil {
		return handleEngineError(c, "today-breaks", err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"attendance": rec,
		"breaks":     breaks,
	})
}

// GET /api/u/attendance/history
func (h *AttendanceController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// ExportOpts: riwayat sendiri boleh ditarik sekaligus dengan per_page=all
	p := helper.ParseFiber(c, "attendance_date", "desc", helper.ExportOpts)

	items, total, err := h.Service.GetUserHistory(userID, p.Limit(), p.Offset())
	if err != nil {
		return handleEngineError(c, "attendance-history", err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"history":    items,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/attendance/summary?month=&year=
func (h *AttendanceController) MonthlySummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "month tidak valid")
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 {
		return helper.Error(c, fiber.StatusBadRequest, "year tidak valid")
	}

	summary, err := h.Service.GetMonthlySummary(userID, month, year)
	if err != nil {
		return handleEngineError(c, "monthly-summary", err)
	}

	return helper.Success(c, "OK", summary)
}

// GET /api/m/attendance/:id/detail — manager melihat detail absensi anggota
func (h *AttendanceController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	breaks, err := h.Service.GetBreaks(id)
	if err != nil {
		return handleEngineError(c, "attendance-detail", err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"attendance_id": id,
		"breaks":        breaks,
	})
}
