package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "absensiku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar aplikasi secara berurutan
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
