package leave

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/leave/model"
	leaveService "absensiku_backend/internals/features/leave/service"
)

type LeaveCategorySeed struct {
	CategoryName string `json:"category_name"`
	CategoryCode string `json:"category_code"`

	HasMonthlyQuota    bool     `json:"has_monthly_quota"`
	MonthlyQuotaDays   *float64 `json:"monthly_quota_days"`
	HasQuarterlyQuota  bool     `json:"has_quarterly_quota"`
	QuarterlyQuotaDays *float64 `json:"quarterly_quota_days"`
	HasAnnualQuota     bool     `json:"has_annual_quota"`
	AnnualQuotaDays    *float64 `json:"annual_quota_days"`

	RequiresApproval bool    `json:"requires_approval"`
	IsPaid           bool    `json:"is_paid"`
	Description      *string `json:"description"`
}

// SeedLeaveCategoriesFromJSON: lewat service supaya saldo per user aktif
// ikut terbentuk untuk tiap kategori baru.
func SeedLeaveCategoriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file kategori cuti:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []LeaveCategorySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	svc := leaveService.NewLeaveService(db)

	for _, data := range inputs {
		var existing model.LeaveCategoryModel
		if err := db.Where("category_code = ?", data.CategoryCode).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kategori '%s' sudah ada, dilewati.", data.CategoryCode)
			continue
		}

		m := model.LeaveCategoryModel{
			ID:                 uuid.New(),
			CategoryName:       data.CategoryName,
			CategoryCode:       data.CategoryCode,
			HasMonthlyQuota:    data.HasMonthlyQuota,
			MonthlyQuotaDays:   data.MonthlyQuotaDays,
			HasQuarterlyQuota:  data.HasQuarterlyQuota,
			QuarterlyQuotaDays: data.QuarterlyQuotaDays,
			HasAnnualQuota:     data.HasAnnualQuota,
			AnnualQuotaDays:    data.AnnualQuotaDays,
			RequiresApproval:   data.RequiresApproval,
			IsPaid:             data.IsPaid,
			Description:        data.Description,
			IsActive:           true,
		}

		if err := svc.CreateCategory(m); err != nil {
			log.Printf("❌ Gagal insert kategori '%s': %v", data.CategoryCode, err)
		} else {
			log.Printf("✅ Berhasil insert kategori '%s'", data.CategoryCode)
		}
	}
}
