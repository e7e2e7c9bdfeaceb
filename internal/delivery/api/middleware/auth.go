// Package middleware holds the echo middlewares of the API server.
package middleware

import (
	"strings"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyIdentity = "identity"
	contextKeyUser     = "user"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier     service.TokenVerifier
	OnboardingUC usecase.OnboardingUsecase
	AdminUC      usecase.AdminUsecase
}

// AuthMiddleware verifies identity provider tokens and gates onboarded and admin routes.
type AuthMiddleware struct {
	verifier     service.TokenVerifier
	onboardingUC usecase.OnboardingUsecase
	adminUC      usecase.AdminUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:     params.Verifier,
		onboardingUC: params.OnboardingUC,
		adminUC:      params.AdminUC,
	}
}

// Authenticate validates the bearer token and stores the identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrInvalidToken.WithDetails("authorization header must be a Bearer token")
		}

		identity, err := m.verifier.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(contextKeyIdentity, identity)

		return next(c)
	}
}

// RequireOnboarded loads the caller's account. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireOnboarded(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.onboardingUC.CurrentUser(c.Request().Context(), identity.Subject)
		if err != nil {
			return err
		}

		c.Set(contextKeyUser, user)

		return next(c)
	}
}

// RequireAdmin allows only configured super-admins. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		if !m.adminUC.IsAdmin(identity.Email) {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// GetIdentity returns the verified token identity.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(*service.Identity)

	return identity, ok && identity != nil
}

// GetUserID returns the subject of the verified token.
func GetUserID(c echo.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return "", false
	}

	return identity.Subject, true
}

// GetUser returns the onboarded account loaded by RequireOnboarded.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// SetIdentity stores an identity on the context, as Authenticate does.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(contextKeyIdentity, identity)
}

// SetUser stores an onboarded account on the context, as RequireOnboarded does.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(contextKeyUser, user)
}
