package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

/* ===================== DTO ===================== */

type CreatePaymentRequest struct {
	MemberID     string  `json:"member_id" validate:"required,uuid"`
	Amount       int     `json:"amount" validate:"required,gt=0"`
	PlanID       *string `json:"plan_id" validate:"omitempty,uuid"`
	Method       *string `json:"method" validate:"omitempty,oneof=Cash Card Online"`
	DurationDays *int    `json:"duration_days" validate:"omitempty,gt=0"`
}

func (r *CreatePaymentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

// MemberSummary: potongan member yang dikirim balik bareng payment
type MemberSummary struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	ExpiryDate *time.Time `json:"expiry_date"`
}
