package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitflow_backend/internals/features/plans/dto"
	"fitflow_backend/internals/features/plans/model"
	helper "fitflow_backend/internals/helpers"
)

type PlanController struct {
	DB *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

// GET /api/plans
func (ctrl *PlanController) GetPlans(c *fiber.Ctx) error {
	var plans []model.PlanModel
	if err := ctrl.DB.Order("plan_duration ASC").Find(&plans).Error; err != nil {
		log.Println("[ERROR] Find plans failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return helper.JsonList(c, "ok", plans, nil)
}

// POST /api/plans
func (ctrl *PlanController) CreatePlan(c *fiber.Ctx) error {
	var body dto.CreatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(nil); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	plan := model.PlanModel{
		PlanName:        strings.TrimSpace(body.PlanName),
		PlanDuration:    body.PlanDuration,
		PlanPrice:       body.PlanPrice,
		PlanDescription: body.PlanDescription,
	}
	if err := ctrl.DB.Create(&plan).Error; err != nil {
		log.Println("[ERROR] Create plan failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return helper.JsonCreated(c, "Plan created", plan)
}

// PUT /api/plans/:id
func (ctrl *PlanController) UpdatePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var body dto.UpdatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(nil); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var plan model.PlanModel
	if err := ctrl.DB.Where("plan_id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
		}
		log.Println("[ERROR] Get plan failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	if body.PlanName != nil && strings.TrimSpace(*body.PlanName) != "" {
		plan.PlanName = strings.TrimSpace(*body.PlanName)
	}
	if body.PlanDuration != nil {
		plan.PlanDuration = *body.PlanDuration
	}
	if body.PlanPrice != nil {
		plan.PlanPrice = *body.PlanPrice
	}
	if body.PlanDescription != nil {
		plan.PlanDescription = body.PlanDescription
	}

	if err := ctrl.DB.Save(&plan).Error; err != nil {
		log.Println("[ERROR] Update plan failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return helper.JsonUpdated(c, "Plan updated", plan)
}

// DELETE /api/plans/:id — payment lama tetap utuh karena hanya simpan snapshot nama
func (ctrl *PlanController) DeletePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid plan id")
	}

	var plan model.PlanModel
	if err := ctrl.DB.Where("plan_id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan not found")
		}
		log.Println("[ERROR] Get plan failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}

	if err := ctrl.DB.Delete(&plan).Error; err != nil {
		log.Println("[ERROR] Delete plan failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server Error")
	}
	return helper.JsonDeleted(c, "Plan removed", fiber.Map{"plan_id": plan.PlanID})
}
