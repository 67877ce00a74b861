package userservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTokenService(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)

	s, err := NewTokenService("test-secret")
	assert.NoError(t, err)
	assert.Equal(t, AccessTokenTime, s.ttl)
}

func TestIssueAndValidate(t *testing.T) {
	s, err := NewTokenService("test-secret")
	assert.NoError(t, err)

	token, err := s.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := s.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestValidateExpiredToken(t *testing.T) {
	s := &TokenService{secret: []byte("test-secret"), ttl: -time.Hour}

	token, err := s.Issue(42)
	assert.NoError(t, err)

	_, err = s.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateInvalidToken(t *testing.T) {
	s, err := NewTokenService("test-secret")
	assert.NoError(t, err)

	other, err := NewTokenService("another-secret")
	assert.NoError(t, err)

	foreign, err := other.Issue(42)
	assert.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "wrong signing key", token: foreign},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Validate(tc.token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
