package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPasswordAndMatch(t *testing.T) {
	user := &User{}
	require.NoError(t, user.SetPassword("correct horse battery staple"))

	match, err := user.IsPasswordMatch("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = user.IsPasswordMatch("wrong password")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestTokenRoundTrip(t *testing.T) {
	authenticator := New("test-secret")
	user := &User{
		PID:      "b911bbce-6bb6-4b50-90f9-b087ab604f6b",
		Username: "jake",
		Email:    "jake@example.com",
	}

	token, err := authenticator.GenerateToken(user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claim, err := authenticator.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, user.PID, claim.PID)
	assert.Equal(t, user.Username, claim.Username)
	assert.Equal(t, user.Email, claim.Email)
}

func TestAuthenticateRejectsForeignSecret(t *testing.T) {
	token, err := New("one-secret").GenerateToken(&User{Username: "jake"}, time.Hour)
	require.NoError(t, err)

	_, err = New("another-secret").Authenticate(token)
	assert.Error(t, err)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	authenticator := New("test-secret")
	token, err := authenticator.GenerateToken(&User{Username: "jake"}, -time.Minute)
	require.NoError(t, err)

	_, err = authenticator.Authenticate(token)
	assert.Error(t, err)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	_, err := New("test-secret").Authenticate("not-a-jwt")
	assert.Error(t, err)
}
