package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "fitflow_backend/internals/features/members/controller"
)

// MemberRoutes: semua di bawah guard JWT (lihat internals/route)
func MemberRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := memberController.NewMemberController(db)

	api.Get("/", ctrl.GetMembers)
	api.Post("/", ctrl.CreateMember)
	api.Get("/:id", ctrl.GetMember)
	api.Put("/:id", ctrl.UpdateMember)
	api.Delete("/:id", ctrl.DeleteMember)
}
