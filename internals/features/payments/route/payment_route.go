package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "fitflow_backend/internals/features/payments/controller"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	api.Post("/", ctrl.CreatePayment)
	api.Get("/", ctrl.GetPayments)
}
