package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DemoUsers are the accounts a local-mode instance accepts.
var DemoUsers = map[string]string{
	"demo":  "password123",
	"merck": "challenge2024",
}

// CredentialStore maps usernames to bcrypt password hashes. It is built once
// at startup and never modified.
type CredentialStore struct {
	hashes map[string][]byte
	// dummy is compared against for unknown users so that a miss costs the
	// same as a wrong password.
	dummy []byte
}

// NewCredentialStore hashes every password in users with the given bcrypt cost.
func NewCredentialStore(users map[string]string, cost int) (*CredentialStore, error) {
	hashes := make(map[string][]byte, len(users))
	for username, password := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", username, err)
		}
		hashes[username] = hash
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("hashing dummy password: %w", err)
	}

	return &CredentialStore{hashes: hashes, dummy: dummy}, nil
}

// Check reports whether password is the secret for username.
func (c *CredentialStore) Check(username, password string) bool {
	hash, ok := c.hashes[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(c.dummy, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
