// internals/features/leave/controller/leave_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	leaveDTO "absensiku_backend/internals/features/leave/dto"
	leaveService "absensiku_backend/internals/features/leave/service"
	helper "absensiku_backend/internals/helpers"
)

type LeaveController struct {
	Service  *leaveService.LeaveService
	Validate *validator.Validate
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{
		Service:  leaveService.NewLeaveService(db),
		Validate: validator.New(),
	}
}

func handleEngineError(c *fiber.Ctx, op string, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return helper.Error(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan sistem")
}

/* ==========================
   User endpoints
========================== */

// POST /api/u/leave/requests
func (h *LeaveController) CreateRequest(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req leaveDTO.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := h.Service.CreateRequest(userID, req)
	if err != nil {
		return handleEngineError(c, "create-leave-request", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Leave request submitted", resp)
}

// GET /api/u/leave/requests?status=
func (h *LeaveController) MyRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	requests, total, err := h.Service.GetUserRequests(userID, status, p.Limit(), p.Offset())
	if err != nil {
		return handleEngineError(c, "my-leave-requests", err)
	}

	return helper.Success(c, "OK", fiber.Map{
		"requests":   requests,
		"pagination": helper.BuildMeta(total, p),
	})
}

// GET /api/u/leave/balances
func (h *LeaveController) MyBalances(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	balances, err := h.Service.GetUserBalances(userID)
	if err != nil {
		return handleEngineError(c, "my-leave-balances", err)
	}

	return helper.Success(c, "OK", balances)
}

// GET /api/u/leave/categories
func (h *LeaveController) ListCategories(c *fiber.Ctx) error {
	categories, err := h.Service.GetCategories(true)
	if err != nil {
		return handleEngineError(c, "list-leave-categories", err)
	}

	return helper.Success(c, "OK", categories)
}

/* ==========================
   Manager endpoints
========================== */

// GET /api/m/leave/pending
func (h *LeaveController) PendingApprovals(c *fiber.Ctx) error {
	managerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	requests, err := h.Service.GetPendingForManager(managerID)
	if err != nil {
		return handleEngineError(c, "pending-approvals", err)
	}

	return helper.Success(c, "OK", requests)
}

// POST /api/m/leave/requests/:id/approve
func (h *LeaveController) Approve(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req leaveDTO.ReviewLeaveRequest
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.Service.Approve(requestID, reviewerID, req.Notes); err != nil {
		return handleEngineError(c, "approve-leave", err)
	}

	return helper.Success(c, "Leave request approved", nil)
}

// POST /api/m/leave/requests/:id/reject
func (h *LeaveController) Reject(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req leaveDTO.ReviewLeaveRequest
	if err := c.BodyParser(&req); err != nil && err != fiber.ErrUnprocessableEntity {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.Service.Reject(requestID, reviewerID, req.Notes); err != nil {
		return handleEngineError(c, "reject-leave", err)
	}

	return helper.Success(c, "Leave request rejected", nil)
}

/* ==========================
   Admin endpoints
========================== */

// POST /api/a/leave/categories
func (h *LeaveController) CreateCategory(c *fiber.Ctx) error {
	var req leaveDTO.CreateLeaveCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.Service.CreateCategory(m); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.Error(c, fiber.StatusConflict, "Kode kategori sudah dipakai")
		}
		return handleEngineError(c, "create-leave-category", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Leave category created", m)
}

// GET /api/a/leave/categories — termasuk yang nonaktif
func (h *LeaveController) ListAllCategories(c *fiber.Ctx) error {
	categories, err := h.Service.GetCategories(false)
	if err != nil {
		return handleEngineError(c, "list-all-leave-categories", err)
	}

	return helper.Success(c, "OK", categories)
}

// POST /api/a/leave/comp-off
func (h *LeaveController) AddCompOff(c *fiber.Ctx) error {
	var req leaveDTO.AddCompOffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.Service.AddCompOff(req.UserID, req.LeaveCategoryID, req.Days, strings.TrimSpace(req.Reason)); err != nil {
		return handleEngineError(c, "add-comp-off", err)
	}

	return helper.Success(c, "Comp-off balance added", nil)
}

// POST /api/a/leave/reset-quotas — pemicu manual (sweep tetap jalan harian)
func (h *LeaveController) ResetQuotas(c *fiber.Ctx) error {
	if err := h.Service.ResetAnnualQuotas(); err != nil {
		return handleEngineError(c, "reset-quotas", err)
	}

	return helper.Success(c, "Annual quotas reset", nil)
}
