package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLocal(t *testing.T) *LocalAuthenticator {
	t.Helper()
	return NewLocalAuthenticator(newTestCredentials(t), string(testSecret), 0, zap.NewNop())
}

func TestLocalIssueAndVerify(t *testing.T) {
	a := newTestLocal(t)
	ctx := context.Background()

	for username, password := range DemoUsers {
		token, err := a.Issue(ctx, username, password)
		require.NoError(t, err)

		subject, err := a.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, username, subject)
	}
}

func TestLocalIssueInvalidCredentials(t *testing.T) {
	a := newTestLocal(t)
	ctx := context.Background()

	token, err := a.Issue(ctx, "demo", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)

	token, err = a.Issue(ctx, "ghost", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLocalVerifyInvalidToken(t *testing.T) {
	a := newTestLocal(t)

	_, err := a.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalVerifyTokenFromOtherSecret(t *testing.T) {
	a := newTestLocal(t)
	other := NewLocalAuthenticator(newTestCredentials(t), "another-secret", time.Hour, zap.NewNop())

	token, err := other.Issue(context.Background(), "demo", "password123")
	require.NoError(t, err)

	_, err = a.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalDefaultTTL(t *testing.T) {
	a := newTestLocal(t)
	assert.Equal(t, DefaultTokenExpiry, a.ttl)
}
