package seeds

import (
	"gorm.io/gorm"

	leave "absensiku_backend/internals/seeds/leave"
	users "absensiku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	// urutan penting: kategori menginisialisasi saldo untuk user aktif
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	leave.SeedLeaveCategoriesFromJSON(db, "internals/seeds/leave/data_leave_categories.json")
}
