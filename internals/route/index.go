// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
	routeDetails "absensiku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================
	// rate limiter global sudah dipasang di SetupMiddlewares
	api := app.Group("/api")

	// Semua grup di bawah wajib JWT + user aktif
	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up MANAGER group (/api/m)...")
	manager := api.Group("/m",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorManager("manajemen tim"),
			constants.ManagerAndAbove...,
		),
	)

	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("administrasi"),
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(user, db)
	routeDetails.AttendanceManagerRoutes(manager, db)

	log.Println("[INFO] Mounting Leave routes...")
	routeDetails.LeaveUserRoutes(user, db)
	routeDetails.LeaveManagerRoutes(manager, db)
	routeDetails.LeaveAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Notification routes...")
	routeDetails.NotificationUserRoutes(user, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserManagerRoutes(manager, db)
	routeDetails.UserAdminRoutes(admin, db)
}
