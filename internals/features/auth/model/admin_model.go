package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Constants ===================== */

const (
	AdminRoleAdmin = "admin"
	AdminRoleStaff = "staff"
)

/* ===================== Model ===================== */

type AdminModel struct {
	AdminID       uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	AdminUsername string    `gorm:"column:admin_username;type:varchar(50);not null" json:"admin_username"`
	AdminEmail    string    `gorm:"column:admin_email;type:varchar(100);not null;unique" json:"admin_email"`
	AdminPassword string    `gorm:"column:admin_password;type:text;not null" json:"-"`
	AdminRole     string    `gorm:"column:admin_role;type:varchar(20);default:'admin'" json:"admin_role"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminModel) TableName() string { return "admins" }
