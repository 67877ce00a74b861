package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"miniblog/internal/common"
)

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "valid email", email: "testuser@example.com", valid: true},
		{name: "empty email", email: "", valid: false},
		{name: "missing domain", email: "testuser@", valid: false},
		{name: "missing local part", email: "@example.com", valid: false},
		{name: "missing tld", email: "testuser@example", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			assert.Equal(t, tc.valid, v.Valid())
		})
	}
}

func TestValidatePassword(t *testing.T) {
	longPassword := make([]byte, 73)
	for i := range longPassword {
		longPassword[i] = 'a'
	}

	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid password", password: "password123", valid: true},
		{name: "empty password", password: "", valid: false},
		{name: "too long password", password: string(longPassword), valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			assert.Equal(t, tc.valid, v.Valid())
		})
	}
}

func TestValidateName(t *testing.T) {
	v := common.NewValidator()
	validateName(v, "")
	assert.False(t, v.Valid())
	assert.Equal(t, "must be provided", v.Errors["name"])

	v = common.NewValidator()
	validateName(v, "testuser")
	assert.True(t, v.Valid())
}
