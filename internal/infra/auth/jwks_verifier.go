package auth

import (
	"creatorhub/config"
	"creatorhub/internal/domain/service"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwksVerifier validates RSA-signed identity provider tokens against a remote JWKS.
// Keys are fetched and refreshed in the background by keyfunc.
type jwksVerifier struct {
	keyfunc jwt.Keyfunc
	parser  *jwt.Parser
}

// NewJWKSVerifier is the constructor for jwksVerifier.
func NewJWKSVerifier(cfg *config.AuthConfig) (*jwksVerifier, error) {
	if cfg == nil || cfg.JWKSURL == "" {
		return nil, errors.New("auth jwksUrl is required in jwks mode")
	}

	kf, err := keyfunc.NewDefault([]string{cfg.JWKSURL})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load JWKS")
	}

	return newJWKSVerifier(kf.Keyfunc, cfg), nil
}

func newJWKSVerifier(kf jwt.Keyfunc, cfg *config.AuthConfig) *jwksVerifier {
	return &jwksVerifier{
		keyfunc: kf,
		parser: jwt.NewParser(parserOptions(
			cfg.Issuer,
			cfg.Audience,
			cfg.Leeway,
			jwt.SigningMethodRS256.Alg(),
			jwt.SigningMethodRS384.Alg(),
			jwt.SigningMethodRS512.Alg(),
		)...),
	}
}

// Verify checks the token signature against the provider keys and validates its claims.
func (v *jwksVerifier) Verify(tokenString string) (*service.Identity, error) {
	claims := new(identityClaims)

	if _, err := v.parser.ParseWithClaims(tokenString, claims, v.keyfunc); err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	return claims.toIdentity()
}
