package seeds

import (
	"log"

	"gorm.io/gorm"
)

// RunAllSeeds dipanggil dari main kalau SEED_ON_BOOT=true.
// Semua seeder idempotent: data yang sudah ada tidak ditimpa.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeder...")

	if err := SeedAdmin(db); err != nil {
		log.Printf("[SEED ERROR] admin: %v", err)
	}
	if err := SeedPlans(db); err != nil {
		log.Printf("[SEED ERROR] plans: %v", err)
	}
	if err := SeedDemoMembers(db); err != nil {
		log.Printf("[SEED ERROR] members: %v", err)
	}

	log.Println("✅ Seeder selesai.")
}
