package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanModel: template durasi/harga membership. Data referensi;
// payment menyimpan snapshot namanya, bukan FK ke sini.
type PlanModel struct {
	PlanID          uuid.UUID `gorm:"column:plan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"plan_id"`
	PlanName        string    `gorm:"column:plan_name;type:varchar(50);not null" json:"plan_name"`
	PlanDuration    int       `gorm:"column:plan_duration;not null;check:plan_duration > 0" json:"plan_duration"` // hari
	PlanPrice       int       `gorm:"column:plan_price;not null;check:plan_price >= 0" json:"plan_price"`
	PlanDescription *string   `gorm:"column:plan_description;type:text" json:"plan_description,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PlanModel) TableName() string { return "plans" }
