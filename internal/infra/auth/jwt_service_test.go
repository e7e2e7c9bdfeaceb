package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		Mode:       "hmac",
		Issuer:     "https://id.creatorhub.test",
		Audience:   "creatorhub",
		HMACSecret: "test_hmac_secret_key_very_long_for_testing",
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	token, err := svc.Issue(&service.Identity{
		Subject: "user_2abc",
		Email:   "alice@example.com",
		Name:    "Alice",
		Picture: "https://img.example.com/alice.png",
	}, time.Hour)
	require.NoError(t, err)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", identity.Subject)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
	assert.WithinDuration(t, time.Now().Add(time.Hour), identity.ExpiresAt, 5*time.Second)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	token, err := svc.Issue(&service.Identity{Subject: "user_2abc"}, -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	other := testAuthConfig()
	other.HMACSecret = "another_hmac_secret_key_very_long_for_testing"
	foreign, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := foreign.Issue(&service.Identity{Subject: "user_2abc"}, time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTService_RejectsWrongAudience(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	other := testAuthConfig()
	other.Audience = "someone-else"
	foreign, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := foreign.Issue(&service.Identity{Subject: "user_2abc"}, time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	identity, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestJWTService_ShortSecret(t *testing.T) {
	cfg := testAuthConfig()
	cfg.HMACSecret = "short"

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWKSVerifier_VerifiesRSAToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cfg := testAuthConfig()
	verifier := newJWKSVerifier(func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, cfg)

	claims := identityClaims{
		Email: "bob@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_bob",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	identity, err := verifier.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user_bob", identity.Subject)
	assert.Equal(t, "bob@example.com", identity.Email)
}

func TestJWKSVerifier_RejectsHMACToken(t *testing.T) {
	cfg := testAuthConfig()
	verifier := newJWKSVerifier(func(*jwt.Token) (any, error) {
		return []byte(cfg.HMACSecret), nil
	}, cfg)

	hmac, err := NewJWTService(cfg)
	require.NoError(t, err)
	token, err := hmac.Issue(&service.Identity{Subject: "user_2abc"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestNewTokenIssuer_RequiresHMACMode(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{Mode: "jwks"}}

	_, err := NewTokenIssuer(cfg)
	assert.Error(t, err)
}
