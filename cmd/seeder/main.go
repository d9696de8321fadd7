// Seeder satu tembak: migrasi skema + data awal.
// Jalankan: go run ./cmd/seeder
package main

import (
	"log"

	"absensiku_backend/internals/configs"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	leaveModel "absensiku_backend/internals/features/leave/model"
	notificationModel "absensiku_backend/internals/features/notifications/model"
	userModel "absensiku_backend/internals/features/users/user/model"
	seeds "absensiku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	db := configs.InitSeederDB()

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceModel{},
		&attendanceModel.BreakModel{},
		&attendanceModel.DailyReportModel{},
		&leaveModel.LeaveCategoryModel{},
		&leaveModel.LeaveBalanceModel{},
		&leaveModel.LeaveRequestModel{},
		&notificationModel.NotificationModel{},
	); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}

	seeds.RunAllSeeds(db)
	log.Println("✅ Seeding selesai")
}
