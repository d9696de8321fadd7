// internals/features/notifications/controller/notification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "absensiku_backend/internals/features/notifications/model"
	helper "absensiku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications
func (h *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&notifModel.NotificationModel{}).Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung notifikasi")
	}

	var items []notifModel.NotificationModel
	if err := q.Order("created_at DESC").Limit(p.Limit()).Offset(p.Offset()).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	var unread int64
	_ = h.DB.Model(&notifModel.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error

	return helper.Success(c, "OK", fiber.Map{
		"notifications": items,
		"unread_count":  unread,
		"pagination":    helper.BuildMeta(total, p),
	})
}

// PATCH /api/u/notifications/:id/read
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Model(&notifModel.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
	}

	return helper.Success(c, "Notifikasi ditandai terbaca", nil)
}

// PATCH /api/u/notifications/read-all
func (h *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := h.DB.Model(&notifModel.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui notifikasi")
	}

	return helper.Success(c, "Semua notifikasi ditandai terbaca", nil)
}
