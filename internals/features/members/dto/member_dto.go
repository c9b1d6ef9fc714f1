package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

/* ===================== DTO ===================== */

type CreateMemberRequest struct {
	MemberName  string  `json:"member_name" validate:"required,max=100"`
	MemberPhone string  `json:"member_phone" validate:"required,max=30"`
	MemberNotes *string `json:"member_notes"`
}

func (r *CreateMemberRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

// UpdateMemberRequest: partial update, field nil = tidak diubah
type UpdateMemberRequest struct {
	MemberName       *string    `json:"member_name" validate:"omitempty,max=100"`
	MemberPhone      *string    `json:"member_phone" validate:"omitempty,max=30"`
	MemberNotes      *string    `json:"member_notes"`
	MemberStatus     *string    `json:"member_status" validate:"omitempty,oneof=Active Inactive Expired"`
	MemberExpiryDate *time.Time `json:"member_expiry_date"`
}

func (r *UpdateMemberRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}
