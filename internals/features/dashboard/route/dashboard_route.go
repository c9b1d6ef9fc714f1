package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "fitflow_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	api.Get("/stats", ctrl.GetStats)
	api.Get("/revenue-analytics", ctrl.GetRevenueAnalytics)
}
