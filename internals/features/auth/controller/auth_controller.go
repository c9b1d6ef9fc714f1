package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitflow_backend/internals/configs"
	"fitflow_backend/internals/features/auth/dto"
	"fitflow_backend/internals/features/auth/model"
	authService "fitflow_backend/internals/features/auth/service"
	helper "fitflow_backend/internals/helpers"
)

/*
	========================================================
	  Controller

========================================================
*/
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please provide email and password")
	}
	if err := body.Validate(nil); err != nil {
		// field terisi tapi formatnya salah (mis. email bukan email) → 422
		fieldErrors := map[string][]string{}
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				field := strings.ToLower(fe.Field())
				fieldErrors[field] = append(fieldErrors[field], fe.Tag())
			}
		}
		return helper.JsonValidationError(c, fieldErrors)
	}

	var admin model.AdminModel
	if err := ctrl.DB.Where("admin_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sama dengan password salah, jangan bocorkan email terdaftar atau tidak
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] Login lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := authService.GenerateToken(admin.AdminID, admin.AdminRole, configs.JWTSecret)
	if err != nil {
		log.Println("[ERROR] GenerateToken failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during login")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		ID:       admin.AdminID,
		Username: admin.AdminUsername,
		Email:    admin.AdminEmail,
		Role:     admin.AdminRole,
		Token:    token,
	})
}

// GET /api/auth/me
func (ctrl *AuthController) GetMe(c *fiber.Ctx) error {
	adminID, ok := c.Locals("admin_id").(string)
	if !ok || adminID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var admin model.AdminModel
	if err := ctrl.DB.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		log.Println("[ERROR] GetMe lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error")
	}

	return helper.JsonOK(c, "ok", dto.MeResponse{
		ID:       admin.AdminID,
		Username: admin.AdminUsername,
		Email:    admin.AdminEmail,
		Role:     admin.AdminRole,
	})
}

// POST /api/auth/logout — token dimasukkan blacklist sampai exp-nya lewat
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, ok := c.Locals("token_string").(string)
	if !ok || tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	claims, err := authService.ParseToken(tokenString, configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token parse error")
	}

	if err := authService.BlacklistToken(ctrl.DB, tokenString, claims); err != nil {
		log.Println("[ERROR] BlacklistToken failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during logout")
	}

	return helper.JsonOK(c, "Logged out successfully", nil)
}
