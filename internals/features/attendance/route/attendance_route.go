package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "fitflow_backend/internals/features/attendance/controller"
	"fitflow_backend/internals/middlewares"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	api.Post("/checkin", middlewares.CheckinRateLimiter(), ctrl.CheckIn)
	api.Get("/", ctrl.GetHistory)
}
