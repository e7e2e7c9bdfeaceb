package middleware

import (
	"time"

	"creatorhub/config"
	domainerrors "creatorhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultTrackPerSecond = 5
	defaultTrackBurst     = 20
	defaultLimiterExpiry  = 3 * time.Minute
)

// NewTrackRateLimiter limits click tracking per client IP.
func NewTrackRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	storeCfg := echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(defaultTrackPerSecond),
		Burst:     defaultTrackBurst,
		ExpiresIn: defaultLimiterExpiry,
	}

	if cfg.RateLimit != nil {
		if cfg.RateLimit.TrackPerSecond > 0 {
			storeCfg.Rate = rate.Limit(cfg.RateLimit.TrackPerSecond)
		}
		if cfg.RateLimit.TrackBurst > 0 {
			storeCfg.Burst = cfg.RateLimit.TrackBurst
		}
		if cfg.RateLimit.ExpiresIn > 0 {
			storeCfg.ExpiresIn = cfg.RateLimit.ExpiresIn
		}
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(storeCfg),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrForbidden.WithDetails("client identifier unavailable")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrRateLimited
		},
	})
}
