package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateMemberRequest_Validate(t *testing.T) {
	ok := CreateMemberRequest{MemberName: "Rahul Sharma", MemberPhone: "+91-9876543210"}
	assert.NoError(t, ok.Validate(nil))

	missingName := CreateMemberRequest{MemberPhone: "+91-9876543210"}
	assert.Error(t, missingName.Validate(nil))

	missingPhone := CreateMemberRequest{MemberName: "Rahul Sharma"}
	assert.Error(t, missingPhone.Validate(nil))
}

func TestUpdateMemberRequest_StatusOneOf(t *testing.T) {
	valid := UpdateMemberRequest{MemberStatus: strPtr("Expired")}
	assert.NoError(t, valid.Validate(nil))

	invalid := UpdateMemberRequest{MemberStatus: strPtr("Suspended")}
	assert.Error(t, invalid.Validate(nil))

	// semua field nil = no-op yang valid
	empty := UpdateMemberRequest{}
	assert.NoError(t, empty.Validate(nil))
}
