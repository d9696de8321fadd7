// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "absensiku_backend/internals/features/users/auth/controller"
	rateLimiter "absensiku_backend/internals/middlewares"
	authMiddleware "absensiku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh-token", authController.Refresh)

	// 🔒 Protected
	baseAuth.Get("/me", authMiddleware.AuthMiddleware(db), authController.Me)
}
