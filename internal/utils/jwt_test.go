package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider-key"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_NoExp(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "42"})

	_, err := TokenExpiry(token)
	assert.Error(t, err)
}

func TestTokenExpiry_Malformed(t *testing.T) {
	_, err := TokenExpiry("not.a.jwt")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	valid := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})
	soon := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Second))})
	past := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"valid", valid, false},
		{"within leeway", soon, true},
		{"expired", past, true},
		{"garbage", "garbage", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenExpired(tt.token, now, time.Minute))
		})
	}
}
