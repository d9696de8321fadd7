package scheduler

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	leaveService "absensiku_backend/internals/features/leave/service"
)

// StartQuotaResetScheduler menjalankan sweep reset kuota tiap interval
// (default 24 jam). Service sendiri yang menolak eksekusi di luar 31 Des,
// jadi scheduler cukup memanggil tiap hari tanpa logika kalender.
func StartQuotaResetScheduler(db *gorm.DB) {
	go func() {
		interval := constants.QuotaResetSweepInterval
		if val := os.Getenv("QUOTA_RESET_SWEEP_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				interval = time.Duration(parsed) * time.Hour
			}
		}

		svc := leaveService.NewLeaveService(db)

		for {
			log.Println("[SWEEP] Mengecek jadwal reset kuota tahunan...")

			err := svc.ResetAnnualQuotas()
			switch {
			case err == nil:
				log.Println("[SWEEP] Kuota tahunan berhasil di-reset")
			case errors.Is(err, leaveService.ErrNotResetDay):
				log.Println("[SWEEP] Bukan 31 Desember, reset dilewati")
			default:
				log.Printf("[SWEEP ERROR] reset kuota: %v", err)
			}

			time.Sleep(interval)
		}
	}()
}
