package dto

import (
	"github.com/go-playground/validator/v10"
)

/* ===================== DTO ===================== */

type CreatePlanRequest struct {
	PlanName        string  `json:"plan_name" validate:"required,max=50"`
	PlanDuration    int     `json:"plan_duration" validate:"required,gt=0"`
	PlanPrice       int     `json:"plan_price" validate:"gte=0"`
	PlanDescription *string `json:"plan_description"`
}

func (r *CreatePlanRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

type UpdatePlanRequest struct {
	PlanName        *string `json:"plan_name" validate:"omitempty,max=50"`
	PlanDuration    *int    `json:"plan_duration" validate:"omitempty,gt=0"`
	PlanPrice       *int    `json:"plan_price" validate:"omitempty,gte=0"`
	PlanDescription *string `json:"plan_description"`
}

func (r *UpdatePlanRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}
