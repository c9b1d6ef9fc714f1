package dto

import (
	"errors"
	"strings"
)

/* ===================== DTO ===================== */

// CheckInRequest: minimal salah satu dari member_id / phone terisi
// (front-desk bisa scan kartu atau ketik nomor HP)
type CheckInRequest struct {
	MemberID string `json:"member_id"`
	Phone    string `json:"phone"`
}

func (r *CheckInRequest) Validate() error {
	if strings.TrimSpace(r.MemberID) == "" && strings.TrimSpace(r.Phone) == "" {
		return errors.New("member_id or phone is required")
	}
	return nil
}
