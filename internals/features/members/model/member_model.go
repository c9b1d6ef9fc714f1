package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Constants ===================== */

const (
	MemberStatusActive   = "Active"
	MemberStatusInactive = "Inactive"
	MemberStatusExpired  = "Expired"
)

/* ===================== Model ===================== */

// MemberModel: aggregate root status keanggotaan.
// Invariant: status Active ⇒ member_expiry_date terisi; pelanggaran
// dikoreksi lazy saat check-in (lihat attendance/service).
type MemberModel struct {
	MemberID    uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`
	MemberName  string    `gorm:"column:member_name;type:varchar(100);not null" json:"member_name"`
	MemberPhone string    `gorm:"column:member_phone;type:varchar(30);not null;unique" json:"member_phone"`
	MemberNotes *string   `gorm:"column:member_notes;type:text" json:"member_notes,omitempty"`

	MemberStatus      string     `gorm:"column:member_status;type:varchar(20);not null;default:'Inactive'" json:"member_status"`
	MemberExpiryDate  *time.Time `gorm:"column:member_expiry_date" json:"member_expiry_date,omitempty"`
	MemberLastCheckIn *time.Time `gorm:"column:member_last_check_in" json:"member_last_check_in,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MemberModel) TableName() string { return "members" }
