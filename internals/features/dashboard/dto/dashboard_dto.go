package dto

import (
	"time"

	"github.com/google/uuid"
)

// ExpiringMember: member Active yang expiry-nya ≤ 7 hari lagi
type ExpiringMember struct {
	MemberID         uuid.UUID  `json:"member_id"`
	MemberName       string     `json:"member_name"`
	MemberPhone      string     `json:"member_phone"`
	MemberExpiryDate *time.Time `json:"member_expiry_date"`
}

type StatsResponse struct {
	Revenue        int              `json:"revenue"`
	ActiveMembers  int64            `json:"active_members"`
	ExpiredMembers int64            `json:"expired_members"`
	TodayCheckIns  int64            `json:"today_check_ins"`
	ExpiringSoon   []ExpiringMember `json:"expiring_soon"`
}
