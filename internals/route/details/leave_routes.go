package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	leaveRoute "absensiku_backend/internals/features/leave/route"
)

func LeaveUserRoutes(user fiber.Router, db *gorm.DB) {
	leaveRoute.UserLeaveRoutes(user, db)
}

func LeaveManagerRoutes(manager fiber.Router, db *gorm.DB) {
	leaveRoute.ManagerLeaveRoutes(manager, db)
}

func LeaveAdminRoutes(admin fiber.Router, db *gorm.DB) {
	leaveRoute.AdminLeaveRoutes(admin, db)
}
