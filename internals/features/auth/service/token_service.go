package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitflow_backend/internals/features/auth/model"
)

// Masa berlaku access token (ikut behavior lama: 30 hari)
const TokenTTL = 30 * 24 * time.Hour

var ErrMissingSecret = errors.New("jwt secret is not configured")

// GenerateToken membuat access token HS256 untuk admin
func GenerateToken(adminID uuid.UUID, role, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id": adminID.String(),
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken memverifikasi signature + exp, lalu mengembalikan claims
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// AdminIDFromClaims mengambil admin_id dari claims
func AdminIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["admin_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing admin_id claim")
	}
	return uuid.Parse(raw)
}

/* ===================== Blacklist ===================== */

// BlacklistToken menyimpan token yang di-logout sampai masa exp-nya lewat
func BlacklistToken(db *gorm.DB, tokenString string, claims jwt.MapClaims) error {
	expiredAt := time.Now().Add(TokenTTL)
	if expUnix, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(expUnix), 0)
	}
	entry := model.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}

// IsTokenBlacklisted cek apakah token ada di blacklist
func IsTokenBlacklisted(db *gorm.DB, tokenString string) (bool, error) {
	var existing model.TokenBlacklist
	err := db.Where("token = ?", tokenString).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
