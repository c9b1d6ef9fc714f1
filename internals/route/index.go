// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "fitflow_backend/internals/features/attendance/route"
	authRoute "fitflow_backend/internals/features/auth/route"
	dashboardRoute "fitflow_backend/internals/features/dashboard/route"
	memberRoute "fitflow_backend/internals/features/members/route"
	paymentRoute "fitflow_backend/internals/features/payments/route"
	planRoute "fitflow_backend/internals/features/plans/route"
	authMiddleware "fitflow_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH (public login + guarded me/logout) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PROTECTED (semua fitur admin/staff) =====================
	log.Println("[INFO] Setting up protected API group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting Member routes...")
	memberRoute.MemberRoutes(api.Group("/members"), db)

	log.Println("[INFO] Mounting Plan routes...")
	planRoute.PlanRoutes(api.Group("/plans"), db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(api.Group("/payment"), db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(api.Group("/attendance"), db)

	log.Println("[INFO] Mounting Dashboard routes...")
	dashboardRoute.DashboardRoutes(api.Group("/dashboard"), db)
}
