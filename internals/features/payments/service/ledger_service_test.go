package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitflow_backend/internals/features/payments/model"
	planModel "fitflow_backend/internals/features/plans/model"
)

func intPtr(i int) *int              { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func TestResolvePlanTerms_PlanWinsOverDurationDays(t *testing.T) {
	plan := &planModel.PlanModel{PlanName: "Monthly", PlanDuration: 30, PlanPrice: 1500}

	duration, name := ResolvePlanTerms(plan, intPtr(90))
	assert.Equal(t, 30, duration)
	assert.Equal(t, "Monthly", name)
}

func TestResolvePlanTerms_FallbackToDurationDays(t *testing.T) {
	duration, name := ResolvePlanTerms(nil, intPtr(45))
	assert.Equal(t, 45, duration)
	assert.Equal(t, model.PaymentPlanCustom, name)
}

func TestResolvePlanTerms_DefaultThirtyDays(t *testing.T) {
	duration, name := ResolvePlanTerms(nil, nil)
	assert.Equal(t, model.DefaultDurationDays, duration)
	assert.Equal(t, "Custom", name)

	// duration_days nol/negatif juga jatuh ke default
	duration, _ = ResolvePlanTerms(nil, intPtr(0))
	assert.Equal(t, 30, duration)
}

func TestComputeNewExpiry_StacksOnFutureExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	current := now.AddDate(0, 0, 10) // masih 10 hari lagi

	got := ComputeNewExpiry(timePtr(current), now, 30)

	// renew sebelum habis: sisa hari tidak hangus → now + 40 hari
	require.Equal(t, now.AddDate(0, 0, 40), got)
}

func TestComputeNewExpiry_RestartsAfterLapse(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	current := now.AddDate(0, 0, -10) // sudah lewat 10 hari

	got := ComputeNewExpiry(timePtr(current), now, 30)

	// renew setelah habis: mulai dari sekarang, tidak ada hari gratis mundur
	require.Equal(t, now.AddDate(0, 0, 30), got)
}

func TestComputeNewExpiry_NilExpiryStartsNow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	got := ComputeNewExpiry(nil, now, 30)
	require.Equal(t, now.AddDate(0, 0, 30), got)
}

func TestComputeNewExpiry_TwoPaymentsAccumulate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	current := timePtr(now.AddDate(0, 0, 10))

	// Dua pembayaran 30 hari untuk member yang sama: yang kedua HARUS
	// dihitung dari hasil yang pertama (baris member di-lock FOR UPDATE
	// di controller), bukan dari expiry lama yang sama-sama dibaca.
	first := ComputeNewExpiry(current, now, 30)
	second := ComputeNewExpiry(timePtr(first), now, 30)

	require.Equal(t, now.AddDate(0, 0, 70), second)

	// Kalau dua-duanya dihitung dari snapshot lama, 30 hari hilang
	stale := ComputeNewExpiry(current, now, 30)
	require.NotEqual(t, second, stale)
}

func TestComputeNewExpiry_ExactTimestampComparison(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 1, 0, time.Local)
	// expiry jam 14:00:00, now 14:00:01 → sudah lewat, base = now
	current := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	got := ComputeNewExpiry(timePtr(current), now, 7)
	require.Equal(t, now.AddDate(0, 0, 7), got)
}
