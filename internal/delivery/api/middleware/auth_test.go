package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"
	mockSvc "creatorhub/internal/mocks/service"
	mockUsecase "creatorhub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	verifier   *mockSvc.MockTokenVerifier
	onboarding *mockUsecase.MockOnboardingUsecase
	admin      *mockUsecase.MockAdminUsecase
}

func newAuthMiddlewareForTest(t *testing.T) (*AuthMiddleware, authMocks) {
	mocks := authMocks{
		verifier:   mockSvc.NewMockTokenVerifier(t),
		onboarding: mockUsecase.NewMockOnboardingUsecase(t),
		admin:      mockUsecase.NewMockAdminUsecase(t),
	}

	return NewAuthMiddleware(AuthMiddlewareParams{
		Verifier:     mocks.verifier,
		OnboardingUC: mocks.onboarding,
		AdminUC:      mocks.admin,
	}), mocks
}

func newAuthContext(authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("valid token stores identity", func(t *testing.T) {
		m, mocks := newAuthMiddlewareForTest(t)
		identity := &service.Identity{Subject: "user-1", Email: "creator@example.com"}
		mocks.verifier.EXPECT().Verify("good").Return(identity, nil).Once()

		c := newAuthContext("Bearer good")
		require.NoError(t, m.Authenticate(okHandler)(c))

		got, ok := GetIdentity(c)
		require.True(t, ok)
		assert.Equal(t, identity, got)

		userID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("missing header", func(t *testing.T) {
		m, _ := newAuthMiddlewareForTest(t)

		err := m.Authenticate(okHandler)(newAuthContext(""))
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		m, _ := newAuthMiddlewareForTest(t)

		err := m.Authenticate(okHandler)(newAuthContext("Basic abc"))
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("rejected token", func(t *testing.T) {
		m, mocks := newAuthMiddlewareForTest(t)
		mocks.verifier.EXPECT().Verify("expired").Return(nil, errors.New("token is expired")).Once()

		err := m.Authenticate(okHandler)(newAuthContext("Bearer expired"))
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}

func TestAuthMiddleware_RequireOnboarded(t *testing.T) {
	t.Run("loads user", func(t *testing.T) {
		m, mocks := newAuthMiddlewareForTest(t)
		user := &entity.User{ID: "user-1", Username: "creator"}
		mocks.onboarding.EXPECT().CurrentUser(mock.Anything, "user-1").Return(user, nil).Once()

		c := newAuthContext("")
		SetIdentity(c, &service.Identity{Subject: "user-1"})
		require.NoError(t, m.RequireOnboarded(okHandler)(c))

		got, ok := GetUser(c)
		require.True(t, ok)
		assert.Equal(t, "creator", got.Username)
	})

	t.Run("not onboarded", func(t *testing.T) {
		m, mocks := newAuthMiddlewareForTest(t)
		mocks.onboarding.EXPECT().CurrentUser(mock.Anything, "user-1").Return(nil, domainerrors.ErrOnboardingRequired).Once()

		c := newAuthContext("")
		SetIdentity(c, &service.Identity{Subject: "user-1"})

		err := m.RequireOnboarded(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrOnboardingRequired))
	})

	t.Run("without identity", func(t *testing.T) {
		m, _ := newAuthMiddlewareForTest(t)

		err := m.RequireOnboarded(okHandler)(newAuthContext(""))
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		m, mocks := newAuthMiddlewareForTest(t)
		mocks.admin.EXPECT().IsAdmin("root@example.com").Return(true).Once()

		c := newAuthContext("")
		SetIdentity(c, &service.Identity{Subject: "user-1", Email: "root@example.com"})
		assert.NoError(t, m.RequireAdmin(okHandler)(c))
	})

	t.Run("others are forbidden", func(t *testing.T) {
		m, mocks := newAuthMiddlewareForTest(t)
		mocks.admin.EXPECT().IsAdmin("creator@example.com").Return(false).Once()

		c := newAuthContext("")
		SetIdentity(c, &service.Identity{Subject: "user-1", Email: "creator@example.com"})

		err := m.RequireAdmin(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}
