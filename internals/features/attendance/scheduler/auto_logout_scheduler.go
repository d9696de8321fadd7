package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	attendanceService "absensiku_backend/internals/features/attendance/service"
)

// StartAutoLogoutScheduler menjalankan sweep auto-logout tiap interval
// (default 15 menit). Sesi yang sudah >= 10 jam ditutup paksa oleh service.
func StartAutoLogoutScheduler(db *gorm.DB) {
	go func() {
		interval := constants.AutoLogoutSweepInterval
		if val := os.Getenv("AUTO_LOGOUT_SWEEP_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				interval = time.Duration(parsed) * time.Minute
			}
		}

		svc := attendanceService.NewAttendanceService(db)

		for {
			log.Println("[SWEEP] Menjalankan auto-logout sesi > 10 jam...")

			count, err := svc.AutoLogoutLongSessions()
			if err != nil {
				log.Printf("[SWEEP ERROR] auto-logout: %v", err)
			} else if count > 0 {
				log.Printf("[SWEEP] %d sesi ditutup paksa", count)
			} else {
				log.Println("[SWEEP] Tidak ada sesi yang melewati ambang")
			}

			time.Sleep(interval)
		}
	}()
}
