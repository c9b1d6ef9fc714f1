package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreatePaymentRequest_Validate(t *testing.T) {
	ok := CreatePaymentRequest{
		MemberID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Amount:   1500,
	}
	assert.NoError(t, ok.Validate(nil))

	missingAmount := CreatePaymentRequest{MemberID: "7c9e6679-7425-40de-944b-e07fc1f90ae7"}
	assert.Error(t, missingAmount.Validate(nil))

	missingMember := CreatePaymentRequest{Amount: 1500}
	assert.Error(t, missingMember.Validate(nil))

	badPlanID := CreatePaymentRequest{
		MemberID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Amount:   1500,
		PlanID:   strPtr("bukan-uuid"),
	}
	assert.Error(t, badPlanID.Validate(nil))
}

func TestCreatePaymentRequest_MethodOneOf(t *testing.T) {
	base := CreatePaymentRequest{
		MemberID: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Amount:   1500,
	}

	for _, m := range []string{"Cash", "Card", "Online"} {
		r := base
		r.Method = strPtr(m)
		assert.NoError(t, r.Validate(nil), "method %s", m)
	}

	bad := base
	bad.Method = strPtr("Cheque")
	assert.Error(t, bad.Validate(nil))
}
