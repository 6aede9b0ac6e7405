// Package auth issues and verifies bearer tokens.
//
// Two strategies satisfy Authenticator: LocalAuthenticator signs HS256 JWTs
// against a static credential store, and CognitoAuthenticator delegates both
// steps to an AWS Cognito user pool.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned by Issue for an unknown user or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned by Verify for any token that cannot be
	// trusted: malformed, badly signed, expired, revoked or without subject.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingToken means the request carried no bearer credential at all.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrAuthService is returned by Issue when the identity provider fails
	// for a reason other than bad credentials.
	ErrAuthService = errors.New("authentication service error")
)

// Authenticator issues and verifies opaque bearer tokens.
type Authenticator interface {
	// Issue exchanges a username and password for a token.
	Issue(ctx context.Context, username, password string) (string, error)
	// Verify returns the subject the token was issued to.
	Verify(ctx context.Context, token string) (string, error)
}
