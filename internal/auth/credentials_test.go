package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestCredentials(t *testing.T) *CredentialStore {
	t.Helper()
	creds, err := NewCredentialStore(DemoUsers, bcrypt.MinCost)
	require.NoError(t, err)
	return creds
}

func TestCredentialStoreCheck(t *testing.T) {
	creds := newTestCredentials(t)

	tests := []struct {
		username string
		password string
		want     bool
	}{
		{"demo", "password123", true},
		{"merck", "challenge2024", true},
		{"demo", "wrong", false},
		{"demo", "challenge2024", false},
		{"demo", "", false},
		{"nobody", "password123", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got := creds.Check(tt.username, tt.password)
		assert.Equal(t, tt.want, got, "Check(%q, %q)", tt.username, tt.password)
	}
}

func TestCredentialStoreDoesNotKeepPlaintext(t *testing.T) {
	creds := newTestCredentials(t)
	for username, hash := range creds.hashes {
		assert.NotEqual(t, DemoUsers[username], string(hash))
	}
}
