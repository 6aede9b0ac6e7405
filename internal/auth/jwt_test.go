package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key")

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "demo", DefaultTokenExpiry)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateTokenUniqueIDs(t *testing.T) {
	a, err := GenerateToken(testSecret, "demo", time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken(testSecret, "demo", time.Hour)
	require.NoError(t, err)

	ca, err := ValidateToken(testSecret, a)
	require.NoError(t, err)
	cb, err := ValidateToken(testSecret, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateToken(testSecret, "demo", DefaultTokenExpiry)
	require.NoError(t, err)
	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenRejects(t *testing.T) {
	now := time.Now()
	future := jwt.NewNumericDate(now.Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage",
			token: "not-a-token",
		},
		{
			name:  "wrong secret",
			token: sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "demo", ExpiresAt: future}),
		},
		{
			name:  "expired",
			token: sign(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{Subject: "demo", ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}),
		},
		{
			name:  "missing expiry",
			token: sign(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{Subject: "demo"}),
		},
		{
			name:  "zero expiry",
			token: sign(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "demo", "exp": 0}),
		},
		{
			name:  "missing subject",
			token: sign(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{ExpiresAt: future}),
		},
		{
			name:  "other hmac algorithm",
			token: sign(t, jwt.SigningMethodHS512, testSecret, jwt.RegisteredClaims{Subject: "demo", ExpiresAt: future}),
		},
		{
			name:  "unsigned",
			token: sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.RegisteredClaims{Subject: "demo", ExpiresAt: future}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(testSecret, tt.token)
			assert.Error(t, err)
		})
	}
}
