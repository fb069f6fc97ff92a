package service

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BasicVerifier checks HTTP Basic Authorization headers against a single
// static credential pair. The configured password is hashed once at
// construction so per-request comparison is constant-time.
type BasicVerifier struct {
	username     string
	passwordHash []byte
}

// NewBasicVerifier creates a verifier for the given credential pair.
func NewBasicVerifier(username, password string, bcryptCost int) (*BasicVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &BasicVerifier{username: username, passwordHash: hash}, nil
}

// Authenticate reports whether the Authorization header carries the
// expected credentials. Any malformed, missing, or undecodable header
// is unauthenticated; no error detail leaks to the caller.
func (v *BasicVerifier) Authenticate(header string) bool {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return false
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return false
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}
