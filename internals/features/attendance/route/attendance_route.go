// file: internals/features/attendance/route/attendance_route.go
package route

import (
	attendanceController "absensiku_backend/internals/features/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAttendanceRoutes: punch & break milik user sendiri.
// Base group: /api/u
func UserAttendanceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	router.Post("/attendance/punch-in", ctrl.PunchIn)
	router.Post("/attendance/punch-out", ctrl.PunchOut)
	router.Post("/attendance/breaks/start", ctrl.StartBreak)
	router.Post("/attendance/breaks/end", ctrl.EndBreak)
	router.Get("/attendance/today", ctrl.Today)
	router.Get("/attendance/history", ctrl.History)
	router.Get("/attendance/summary", ctrl.MonthlySummary)
}

// ManagerAttendanceRoutes: detail absensi anggota tim (target link notifikasi
// pelanggaran istirahat).
// Base group: /api/m
func ManagerAttendanceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	router.Get("/attendance/:id/detail", ctrl.Detail)
}
