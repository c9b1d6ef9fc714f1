package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist menyimpan token yang sudah di-logout supaya tidak bisa dipakai lagi
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID      `gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"token_blacklist_id"`
	Token            string         `gorm:"column:token;type:text;not null;unique" json:"token"`
	ExpiredAt        time.Time      `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
