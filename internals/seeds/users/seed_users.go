package users

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	EmployeeID   string `json:"employee_id"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	IsManager    bool   `json:"is_manager"`
	ManagerEmail string `json:"manager_email"` // resolve setelah semua user dibuat
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	// pass 1: buat user
	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			ID:         uuid.New(),
			EmployeeID: data.EmployeeID,
			Email:      data.Email,
			Password:   string(hashed),
			FullName:   data.FullName,
			Role:       data.Role,
			IsManager:  data.IsManager,
			IsActive:   true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s'", data.Email)
		}
	}

	// pass 2: pasang manager_id
	for _, data := range inputs {
		if data.ManagerEmail == "" {
			continue
		}

		var mgr model.UserModel
		if err := db.Select("id").Where("email = ?", data.ManagerEmail).First(&mgr).Error; err != nil {
			log.Printf("⚠️ Manager '%s' untuk '%s' tidak ditemukan", data.ManagerEmail, data.Email)
			continue
		}

		if err := db.Model(&model.UserModel{}).
			Where("email = ?", data.Email).
			Update("manager_id", mgr.ID).Error; err != nil {
			log.Printf("❌ Gagal set manager untuk '%s': %v", data.Email, err)
		}
	}
}
