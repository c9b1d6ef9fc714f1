package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentModel "fitflow_backend/internals/features/payments/model"
)

func payment(amount int, date time.Time) paymentModel.PaymentModel {
	return paymentModel.PaymentModel{
		PaymentAmount: amount,
		PaymentPlan:   "Monthly",
		PaymentMethod: paymentModel.PaymentMethodCash,
		PaymentDate:   date,
	}
}

func TestGroupMonthly_SumsPerMonthYear(t *testing.T) {
	payments := []paymentModel.PaymentModel{
		payment(1500, time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local)),
		payment(4000, time.Date(2026, 1, 20, 10, 0, 0, 0, time.Local)),
		payment(1500, time.Date(2026, 2, 3, 10, 0, 0, 0, time.Local)),
		payment(7500, time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)),
	}

	got := GroupMonthly(payments)
	require.Len(t, got, 3)

	assert.Equal(t, MonthlyRevenue{Month: "Jan", Year: 2026, Revenue: 5500, Payments: 2}, got[0])
	assert.Equal(t, MonthlyRevenue{Month: "Feb", Year: 2026, Revenue: 1500, Payments: 1}, got[1])
	assert.Equal(t, MonthlyRevenue{Month: "Mar", Year: 2026, Revenue: 7500, Payments: 1}, got[2])
}

func TestGroupMonthly_SplitsSameMonthAcrossYears(t *testing.T) {
	// Des 2025 dan Des 2026 tidak boleh nyampur di satu bucket
	payments := []paymentModel.PaymentModel{
		payment(1000, time.Date(2025, 12, 10, 0, 0, 0, 0, time.Local)),
		payment(2000, time.Date(2026, 12, 10, 0, 0, 0, 0, time.Local)),
	}

	got := GroupMonthly(payments)
	require.Len(t, got, 2)

	assert.Equal(t, 2025, got[0].Year)
	assert.Equal(t, 1000, got[0].Revenue)
	assert.Equal(t, 2026, got[1].Year)
	assert.Equal(t, 2000, got[1].Revenue)
}

func TestGroupMonthly_EmptyInput(t *testing.T) {
	got := GroupMonthly(nil)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2026, 8, 28, 17, 45, 3, 0, time.Local)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), StartOfMonth(now))
}
