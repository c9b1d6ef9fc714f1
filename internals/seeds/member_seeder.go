package seeds

import (
	"log"
	"time"

	"gorm.io/gorm"

	memberModel "fitflow_backend/internals/features/members/model"
)

func timePtr(t time.Time) *time.Time { return &t }

// SeedDemoMembers mengisi beberapa member demo, hanya kalau tabel kosong.
// Dipakai buat demo/dev, bukan produksi.
func SeedDemoMembers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&memberModel.MemberModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[SEED] Members sudah ada, skip.")
		return nil
	}

	now := time.Now()
	members := []memberModel.MemberModel{
		{
			MemberName:       "Rahul Sharma",
			MemberPhone:      "+91-9876543210",
			MemberStatus:     memberModel.MemberStatusActive,
			MemberExpiryDate: timePtr(now.AddDate(0, 0, 15)),
			MemberNotes:      strPtr("Regular member, prefers morning workouts"),
		},
		{
			MemberName:       "Priya Patel",
			MemberPhone:      "+91-9876543211",
			MemberStatus:     memberModel.MemberStatusActive,
			MemberExpiryDate: timePtr(now.AddDate(0, 0, 45)),
		},
		{
			MemberName:       "Amit Verma",
			MemberPhone:      "+91-9876543212",
			MemberStatus:     memberModel.MemberStatusExpired,
			MemberExpiryDate: timePtr(now.AddDate(0, 0, -10)),
			MemberNotes:      strPtr("Membership lapsed, follow up for renewal"),
		},
		{
			MemberName:  "Sneha Iyer",
			MemberPhone: "+91-9876543213",
			// baru daftar, belum bayar
			MemberStatus: memberModel.MemberStatusInactive,
		},
	}
	if err := db.Create(&members).Error; err != nil {
		return err
	}

	log.Printf("[SEED] ✅ %d demo members dibuat", len(members))
	return nil
}
