// file: internals/features/users/user/route/user_route.go
package route

import (
	userController "absensiku_backend/internals/features/users/user/controller"
	rateLimiter "absensiku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ManagerUserRoutes: manager melihat anggota timnya.
// Base group: /api/m
func ManagerUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Get("/team", ctrl.ListTeamMembers)
}

// AdminUserRoutes: CRUD karyawan.
// Base group: /api/a
func AdminUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	router.Post("/users", rateLimiter.RegisterRateLimiter(), ctrl.CreateUser)
	router.Get("/users", ctrl.ListUsers)
	router.Get("/users/:id", ctrl.GetUser)
	router.Patch("/users/:id", ctrl.UpdateUser)
	router.Delete("/users/:id", ctrl.DeactivateUser)
}
