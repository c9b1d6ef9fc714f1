package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitflow_backend/internals/configs"
	authModel "fitflow_backend/internals/features/auth/model"
)

// SeedAdmin membuat akun admin default kalau belum ada.
// Email & password bisa dioverride via env untuk deployment beneran.
func SeedAdmin(db *gorm.DB) error {
	email := configs.GetEnv("SEED_ADMIN_EMAIL", "admin@apexfit.com")
	password := configs.GetEnv("SEED_ADMIN_PASSWORD", "admin123")

	var existing authModel.AdminModel
	err := db.Where("admin_email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("[SEED] Admin sudah ada, skip.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := authModel.AdminModel{
		AdminUsername: "admin",
		AdminEmail:    email,
		AdminPassword: string(hashed),
		AdminRole:     authModel.AdminRoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Admin default dibuat: %s", email)
	return nil
}
