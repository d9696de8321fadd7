package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "absensiku_backend/internals/features/users/user/route"
)

func UserManagerRoutes(manager fiber.Router, db *gorm.DB) {
	userRoute.ManagerUserRoutes(manager, db)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.AdminUserRoutes(admin, db)
}
