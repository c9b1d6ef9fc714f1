package service

import (
	"time"

	paymentModel "fitflow_backend/internals/features/payments/model"
)

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyRevenue: satu bucket (bulan, tahun) untuk chart revenue
type MonthlyRevenue struct {
	Month    string `json:"month"`
	Year     int    `json:"year"`
	Revenue  int    `json:"revenue"`
	Payments int    `json:"payments"`
}

// GroupMonthly mengelompokkan payment per (bulan, tahun).
// Input diasumsikan sudah urut tanggal naik; urutan bucket mengikuti
// kemunculan pertama, jadi hasilnya kronologis.
func GroupMonthly(payments []paymentModel.PaymentModel) []MonthlyRevenue {
	type key struct {
		year  int
		month time.Month
	}
	index := map[key]int{}
	out := []MonthlyRevenue{}

	for _, p := range payments {
		k := key{p.PaymentDate.Year(), p.PaymentDate.Month()}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, MonthlyRevenue{
				Month: monthNames[k.month-1],
				Year:  k.year,
			})
		}
		out[i].Revenue += p.PaymentAmount
		out[i].Payments++
	}
	return out
}

// StartOfMonth: 00:00:00 tanggal 1 bulan berjalan (lokal)
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
