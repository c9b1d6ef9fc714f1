package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

/* ===================== DTO ===================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}

// LoginResponse dikirim balik ke client setelah login sukses
type LoginResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Token    string    `json:"token"`
}

type MeResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}
