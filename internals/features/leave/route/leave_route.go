// file: internals/features/leave/route/leave_route.go
package route

import (
	leaveController "absensiku_backend/internals/features/leave/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserLeaveRoutes: pengajuan & saldo milik user sendiri.
// Base group: /api/u
func UserLeaveRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := leaveController.NewLeaveController(db)

	router.Post("/leave/requests", ctrl.CreateRequest)
	router.Get("/leave/requests", ctrl.MyRequests)
	router.Get("/leave/balances", ctrl.MyBalances)
	router.Get("/leave/categories", ctrl.ListCategories)
}

// ManagerLeaveRoutes: antrean approval tim.
// Base group: /api/m
func ManagerLeaveRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := leaveController.NewLeaveController(db)

	router.Get("/leave/pending", ctrl.PendingApprovals)
	router.Post("/leave/requests/:id/approve", ctrl.Approve)
	router.Post("/leave/requests/:id/reject", ctrl.Reject)
}

// AdminLeaveRoutes: kelola kategori, comp-off, dan pemicu reset manual.
// Base group: /api/a
func AdminLeaveRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := leaveController.NewLeaveController(db)

	router.Post("/leave/categories", ctrl.CreateCategory)
	router.Get("/leave/categories", ctrl.ListAllCategories)
	router.Post("/leave/comp-off", ctrl.AddCompOff)
	router.Post("/leave/reset-quotas", ctrl.ResetQuotas)
}
