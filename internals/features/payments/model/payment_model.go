package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Constants ===================== */

const (
	PaymentMethodCash   = "Cash"
	PaymentMethodCard   = "Card"
	PaymentMethodOnline = "Online"
)

// Snapshot nama plan ketika pembayaran tanpa plan / plan tidak ketemu
const PaymentPlanCustom = "Custom"

// Durasi default kalau caller tidak kirim plan maupun duration_days
const DefaultDurationDays = 30

/* ===================== Model ===================== */

// PaymentModel: fakta finansial immutable. payment_plan adalah snapshot
// nama plan saat transaksi (bukan FK) supaya histori tidak berubah
// walau plan-nya diedit/dihapus.
type PaymentModel struct {
	PaymentID       uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentMemberID uuid.UUID `gorm:"column:payment_member_id;type:uuid;not null;index" json:"payment_member_id"`

	PaymentAmount int    `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentPlan   string `gorm:"column:payment_plan;type:varchar(50);not null;default:'Custom'" json:"payment_plan"`
	PaymentMethod string `gorm:"column:payment_method;type:varchar(20);not null;default:'Cash'" json:"payment_method"`

	PaymentDate time.Time `gorm:"column:payment_date;not null;index" json:"payment_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
