package auth

import (
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// minHMACSecretLength rejects secrets too short for HS256.
const minHMACSecretLength = 32

// jwtService verifies and signs HS256 tokens with a shared secret.
// It stands in for the identity provider during local development and tests.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	parser   *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.AuthConfig) (*jwtService, error) {
	if cfg == nil || len(cfg.HMACSecret) < minHMACSecretLength {
		return nil, errors.Errorf("auth hmac secret must be at least %d characters", minHMACSecretLength)
	}

	return &jwtService{
		secret:   []byte(cfg.HMACSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		parser:   jwt.NewParser(parserOptions(cfg.Issuer, cfg.Audience, cfg.Leeway, jwt.SigningMethodHS256.Alg())...),
	}, nil
}

// Verify checks the signature and registered claims of a token.
func (s *jwtService) Verify(tokenString string) (*service.Identity, error) {
	claims := new(identityClaims)

	if _, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	return claims.toIdentity()
}

// Issue signs a token for the identity valid for ttl.
func (s *jwtService) Issue(identity *service.Identity, ttl time.Duration) (string, error) {
	if identity == nil || identity.Subject == "" {
		return "", errors.New("identity subject is required")
	}

	now := time.Now()
	claims := identityClaims{
		Email:   identity.Email,
		Name:    identity.Name,
		Picture: identity.Picture,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
