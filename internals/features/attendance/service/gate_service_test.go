package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memberModel "fitflow_backend/internals/features/members/model"
)

func timePtr(t time.Time) *time.Time { return &t }

func activeMember(expiry time.Time) *memberModel.MemberModel {
	return &memberModel.MemberModel{
		MemberName:       "Rahul Sharma",
		MemberStatus:     memberModel.MemberStatusActive,
		MemberExpiryDate: timePtr(expiry),
	}
}

func TestEvaluate_DeniesNonActiveStatus(t *testing.T) {
	now := time.Now()

	for _, status := range []string{memberModel.MemberStatusInactive, memberModel.MemberStatusExpired} {
		m := &memberModel.MemberModel{MemberStatus: status}
		assert.Equal(t, DecisionDenyNotActive, Evaluate(m, now, false), "status %s", status)
	}
}

func TestEvaluate_LazyExpiryBeatsDuplicateCheck(t *testing.T) {
	now := time.Now()
	m := activeMember(now.AddDate(0, 0, -1)) // expiry kemarin

	// walau sudah ada attendance hari ini, expiry dicek duluan
	assert.Equal(t, DecisionDenyExpired, Evaluate(m, now, true))
	assert.Equal(t, DecisionDenyExpired, Evaluate(m, now, false))
}

func TestEvaluate_ExactTimestampExpiry(t *testing.T) {
	// member expire jam 14:00 → jam 14:00:01 hari yang sama sudah ditolak
	expiry := time.Date(2026, 5, 20, 14, 0, 0, 0, time.Local)
	m := activeMember(expiry)

	assert.Equal(t, DecisionAdmit, Evaluate(m, expiry.Add(-time.Second), false))
	assert.Equal(t, DecisionDenyExpired, Evaluate(m, expiry.Add(time.Second), false))
}

func TestEvaluate_AlreadyTodayIsIdempotentSuccess(t *testing.T) {
	now := time.Now()
	m := activeMember(now.AddDate(0, 0, 25))

	assert.Equal(t, DecisionAlreadyToday, Evaluate(m, now, true))
}

func TestEvaluate_AdmitsCurrentActiveMember(t *testing.T) {
	now := time.Now()
	m := activeMember(now.AddDate(0, 0, 25))

	assert.Equal(t, DecisionAdmit, Evaluate(m, now, false))
}

func TestEvaluate_ActiveWithoutExpiryAdmits(t *testing.T) {
	// pelanggaran invariant (Active tanpa expiry) tidak bikin panic;
	// dibiarkan masuk, koreksi terjadi saat expiry terisi lagi
	now := time.Now()
	m := &memberModel.MemberModel{MemberStatus: memberModel.MemberStatusActive}

	assert.Equal(t, DecisionAdmit, Evaluate(m, now, false))
}

func TestDayWindow_CoversLocalCalendarDay(t *testing.T) {
	now := time.Date(2026, 5, 20, 14, 35, 12, 0, time.Local)
	start, end := DayWindow(now)

	require.Equal(t, time.Date(2026, 5, 20, 0, 0, 0, 0, time.Local), start)
	require.Equal(t, time.Date(2026, 5, 20, 23, 59, 59, 999000000, time.Local), end)

	assert.True(t, now.After(start) && now.Before(end))
}

func TestExpiryDays_CeilsPartialDays(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.Local)

	// 12 jam lagi tetap dihitung 1 hari
	assert.Equal(t, 1, ExpiryDays(now.Add(12*time.Hour), now))
	// tepat 25 hari
	assert.Equal(t, 25, ExpiryDays(now.AddDate(0, 0, 25), now))
	// 5 hari + 1 detik → 6
	assert.Equal(t, 6, ExpiryDays(now.AddDate(0, 0, 5).Add(time.Second), now))
}
