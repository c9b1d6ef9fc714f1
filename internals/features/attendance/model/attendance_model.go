package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Constants ===================== */

const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
)

/* ===================== Model ===================== */

// AttendanceModel: append-only, satu baris per check-in sukses.
// Scan ulang di hari yang sama tidak menambah baris (lihat gate service).
type AttendanceModel struct {
	AttendanceID       uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceMemberID uuid.UUID `gorm:"column:attendance_member_id;type:uuid;not null;index" json:"attendance_member_id"`
	AttendanceDate     time.Time `gorm:"column:attendance_date;not null;index" json:"attendance_date"`
	AttendanceStatus   string    `gorm:"column:attendance_status;type:varchar(20);not null;default:'Present'" json:"attendance_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }
