package seeds

import (
	"log"

	"gorm.io/gorm"

	planModel "fitflow_backend/internals/features/plans/model"
)

func strPtr(s string) *string { return &s }

// SeedPlans mengisi katalog plan default, hanya kalau tabel masih kosong
func SeedPlans(db *gorm.DB) error {
	var count int64
	if err := db.Model(&planModel.PlanModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[SEED] Plans sudah ada, skip.")
		return nil
	}

	plans := []planModel.PlanModel{
		{PlanName: "Monthly", PlanDuration: 30, PlanPrice: 1500, PlanDescription: strPtr("Access to gym for 30 days")},
		{PlanName: "Quarterly", PlanDuration: 90, PlanPrice: 4000, PlanDescription: strPtr("Access to gym for 3 months - Save 11%")},
		{PlanName: "Half Yearly", PlanDuration: 180, PlanPrice: 7500, PlanDescription: strPtr("Access to gym for 6 months - Save 17%")},
		{PlanName: "Yearly", PlanDuration: 365, PlanPrice: 14000, PlanDescription: strPtr("Access to gym for 1 year - Save 22%")},
	}
	if err := db.Create(&plans).Error; err != nil {
		return err
	}

	log.Printf("[SEED] ✅ %d plans dibuat", len(plans))
	return nil
}
