package service

import (
	"time"

	planModel "fitflow_backend/internals/features/plans/model"
	"fitflow_backend/internals/features/payments/model"
)

// ResolvePlanTerms menentukan durasi (hari) dan snapshot nama plan untuk
// sebuah pembayaran. Plan yang resolve selalu menang atas duration_days
// kiriman caller; kalau plan nil, fallback ke duration_days atau 30.
func ResolvePlanTerms(plan *planModel.PlanModel, durationDays *int) (int, string) {
	if plan != nil {
		return plan.PlanDuration, plan.PlanName
	}
	duration := model.DefaultDurationDays
	if durationDays != nil && *durationDays > 0 {
		duration = *durationDays
	}
	return duration, model.PaymentPlanCustom
}

// ComputeNewExpiry: aturan stacking expiry.
// Perpanjang dari max(expiry sekarang, now): bayar sebelum habis berarti
// sisa hari tidak hangus, bayar setelah habis berarti mulai dari sekarang
// (tidak ada hari gratis ke belakang). Perbandingan pakai timestamp penuh.
func ComputeNewExpiry(currentExpiry *time.Time, now time.Time, durationDays int) time.Time {
	base := now
	if currentExpiry != nil && currentExpiry.After(now) {
		base = *currentExpiry
	}
	return base.AddDate(0, 0, durationDays)
}
