package auth

import (
	"log/slog"

	"creatorhub/config"
	"creatorhub/internal/domain/constants"
	"creatorhub/internal/domain/service"

	"github.com/pkg/errors"
)

// NewTokenVerifier selects the verifier for the configured auth mode.
func NewTokenVerifier(cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Auth.Mode {
	case constants.AuthModeJWKS:
		logger.Info("Verifying tokens against JWKS", slog.String("jwksUrl", cfg.Auth.JWKSURL))

		return NewJWKSVerifier(cfg.Auth)
	case constants.AuthModeHMAC:
		logger.Warn("Verifying tokens with a shared HMAC secret, use for development only")

		return NewJWTService(cfg.Auth)
	default:
		return nil, errors.Errorf("unsupported auth mode: %q", cfg.Auth.Mode)
	}
}

// NewTokenIssuer returns a development token issuer. Only hmac mode can mint tokens.
func NewTokenIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.Auth == nil || cfg.Auth.Mode != constants.AuthModeHMAC {
		return nil, errors.New("token issuing requires auth mode hmac")
	}

	return NewJWTService(cfg.Auth)
}
