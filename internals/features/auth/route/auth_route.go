package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "fitflow_backend/internals/features/auth/controller"
	"fitflow_backend/internals/middlewares"
	authMiddleware "fitflow_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api/auth")

	// Public
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// Protected
	api.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.GetMe)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
