package service

import (
	"math"
	"time"

	memberModel "fitflow_backend/internals/features/members/model"
)

// Decision: hasil evaluasi gate per attempt. Dievaluasi fresh tiap request,
// tidak ada state machine yang disimpan.
type Decision int

const (
	DecisionDenyNotActive Decision = iota // status bukan Active
	DecisionDenyExpired                   // Active tapi expiry sudah lewat → koreksi lazy ke Expired
	DecisionAlreadyToday                  // sudah check-in hari ini → sukses tanpa baris baru
	DecisionAdmit                         // buat attendance + update last_check_in
)

// Evaluate menjalankan tabel keputusan check-in, urut:
// status → expiry (timestamp penuh, bukan per tanggal) → duplikat harian.
func Evaluate(member *memberModel.MemberModel, now time.Time, alreadyToday bool) Decision {
	if member.MemberStatus != memberModel.MemberStatusActive {
		return DecisionDenyNotActive
	}
	if member.MemberExpiryDate != nil && member.MemberExpiryDate.Before(now) {
		return DecisionDenyExpired
	}
	if alreadyToday {
		return DecisionAlreadyToday
	}
	return DecisionAdmit
}

// DayWindow: batas hari kalender lokal, 00:00:00.000 s/d 23:59:59.999.
// Dipakai untuk query "sudah check-in hari ini".
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// ExpiryDays: sisa hari membership, dibulatkan ke atas.
// Expiry 12 jam lagi tetap dilaporkan 1 hari.
func ExpiryDays(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}
