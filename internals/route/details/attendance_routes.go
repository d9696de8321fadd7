package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "absensiku_backend/internals/features/attendance/route"
)

func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	attendanceRoute.UserAttendanceRoutes(user, db)
}

func AttendanceManagerRoutes(manager fiber.Router, db *gorm.DB) {
	attendanceRoute.ManagerAttendanceRoutes(manager, db)
}
