package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	planController "fitflow_backend/internals/features/plans/controller"
)

func PlanRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := planController.NewPlanController(db)

	api.Get("/", ctrl.GetPlans)
	api.Post("/", ctrl.CreatePlan)
	api.Put("/:id", ctrl.UpdatePlan)
	api.Delete("/:id", ctrl.DeletePlan)
}
