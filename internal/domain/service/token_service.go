package service

import (
	"time"
)

// Identity holds the verified claims of an identity provider token.
type Identity struct {
	Subject   string    // Stable user identifier; used as the User primary key.
	Email     string    // Primary email address, may be empty.
	Name      string    // Display name, may be empty.
	Picture   string    // Avatar URL, may be empty.
	ExpiresAt time.Time // Token expiry.
}

// TokenVerifier validates bearer tokens issued by the identity provider.
// Authentication itself is delegated; the service only verifies and trusts the subject.
type TokenVerifier interface {
	// Verify parses and validates a token string and returns its identity.
	Verify(tokenString string) (*Identity, error)
}

// TokenIssuer mints tokens compatible with a TokenVerifier. Used for local development and tests.
type TokenIssuer interface {
	// Issue signs a token for the identity valid for ttl.
	Issue(identity *Identity, ttl time.Duration) (string, error)
}
