// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitflow_backend/internals/configs"
	authModel "fitflow_backend/internals/features/auth/model"
	authService "fitflow_backend/internals/features/auth/service"
)

// AuthMiddleware: guard JWT untuk semua endpoint admin/staff.
// Urutan: bearer → blacklist → parse+exp → admin masih ada → locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization header
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist (token hasil logout)
		blacklisted, err := authService.IsTokenBlacklisted(db, tokenString)
		if err != nil {
			log.Println("[ERROR] DB error saat cek blacklist:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			log.Println("[WARNING] Token ditemukan di blacklist")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		// 3) Parse & verifikasi JWT (signature + exp)
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}
		claims, err := authService.ParseToken(tokenString, secretKey)
		if err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		// 4) Ambil admin_id & pastikan admin masih ada
		adminID, err := authService.AdminIDFromClaims(claims)
		if err != nil {
			log.Println("[ERROR] admin_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
		}

		var admin authModel.AdminModel
		if err := db.Select("admin_id", "admin_role").
			Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Admin not found")
			}
			log.Println("[ERROR] DB error saat cek admin:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		// 5) Simpan info ke context
		c.Locals("admin_id", admin.AdminID.String())
		c.Locals("admin_role", admin.AdminRole)
		c.Locals("token_string", tokenString)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Unauthorized - No token provided")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
