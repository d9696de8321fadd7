// file: internals/features/notifications/route/notification_route.go
package route

import (
	notificationController "absensiku_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserNotificationRoutes — Base group: /api/u
func UserNotificationRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	router.Get("/notifications", ctrl.ListMine)
	// read-all harus terdaftar sebelum :id agar tidak tertangkap param
	router.Patch("/notifications/read-all", ctrl.MarkAllRead)
	router.Patch("/notifications/:id/read", ctrl.MarkRead)
}
