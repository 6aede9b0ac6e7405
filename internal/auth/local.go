package auth

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// LocalAuthenticator checks passwords against a CredentialStore and issues
// self-signed JWTs. Verification needs no lookup.
type LocalAuthenticator struct {
	creds  *CredentialStore
	secret []byte
	ttl    time.Duration
	logger *zap.Logger
}

var _ Authenticator = (*LocalAuthenticator)(nil)

// NewLocalAuthenticator returns an authenticator signing with secret. A
// non-positive ttl means DefaultTokenExpiry.
func NewLocalAuthenticator(creds *CredentialStore, secret string, ttl time.Duration, logger *zap.Logger) *LocalAuthenticator {
	if ttl <= 0 {
		ttl = DefaultTokenExpiry
	}
	return &LocalAuthenticator{
		creds:  creds,
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}
}

// Issue returns a signed token whose subject is username.
func (a *LocalAuthenticator) Issue(_ context.Context, username, password string) (string, error) {
	if !a.creds.Check(username, password) {
		a.logger.Warn("credentials rejected", zap.String("user", username))
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(a.secret, username, a.ttl)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	a.logger.Info("user logged in", zap.String("user", username))
	return token, nil
}

// Verify checks the token signature and expiry and returns its subject.
func (a *LocalAuthenticator) Verify(_ context.Context, token string) (string, error) {
	claims, err := ValidateToken(a.secret, token)
	if err != nil {
		a.logger.Warn("token rejected", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	a.logger.Debug("token verified", zap.String("user", claims.Subject))
	return claims.Subject, nil
}
