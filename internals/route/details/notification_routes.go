package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "absensiku_backend/internals/features/notifications/route"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	notificationRoute.UserNotificationRoutes(user, db)
}
