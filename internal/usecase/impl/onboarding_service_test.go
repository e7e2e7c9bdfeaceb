package impl

import (
	"context"
	"strings"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	mockRepo "creatorhub/internal/mocks/repository"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// onboardingServiceFixtures holds all test dependencies for onboarding service tests.
type onboardingServiceFixtures struct {
	service  usecase.OnboardingUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestOnboardingService(t *testing.T) onboardingServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	return onboardingServiceFixtures{
		service:  NewOnboardingService(OnboardingServiceParams{UserRepo: userRepo, Logger: discardLogger()}),
		userRepo: userRepo,
	}
}

func testIdentity() *service.Identity {
	return &service.Identity{
		Subject: "auth0|123",
		Email:   "ana@example.com",
		Name:    "Ana",
		Picture: "https://cdn.example/ana.png",
	}
}

func TestOnboardingService_Onboard_Success(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	identity := testIdentity()

	fx.userRepo.EXPECT().FindUserByID(ctx, identity.Subject).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().UsernameExists(ctx, "ana_creates").Return(false, nil)
	fx.userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Onboard(ctx, identity, &usecase.OnboardInput{Username: "ana_creates"})

	require.NoError(t, err)
	assert.Equal(t, identity.Subject, user.ID)
	assert.Equal(t, "ana_creates", user.Username)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, identity.Picture, *user.AvatarURL)
	assert.Equal(t, entity.DefaultThemeColor, user.ThemeColor)
	assert.Equal(t, entity.DefaultTheme, user.Theme)
}

func TestOnboardingService_Onboard_NameFallsBackToUsername(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	identity := &service.Identity{Subject: "auth0|9"}

	fx.userRepo.EXPECT().FindUserByID(ctx, identity.Subject).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().UsernameExists(ctx, "solo").Return(false, nil)
	fx.userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Onboard(ctx, identity, &usecase.OnboardInput{Username: "solo"})

	require.NoError(t, err)
	assert.Equal(t, "solo", user.Name)
	assert.Nil(t, user.AvatarURL)
}

func TestOnboardingService_Onboard_InvalidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{name: "too short", username: "ab"},
		{name: "uppercase", username: "Ana"},
		{name: "spaces", username: "ana creates"},
		{name: "dots", username: "ana.c"},
		{name: "too long", username: strings.Repeat("a", entity.UsernameMaxLength+1)},
		{name: "reserved route", username: "health"},
		{name: "reserved api prefix", username: "api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOnboardingService(t)

			_, err := fx.service.Onboard(context.Background(), testIdentity(), &usecase.OnboardInput{Username: tt.username})

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Contains(t, validationErr.Fields(), "username")
		})
	}
}

func TestOnboardingService_Onboard_AlreadyOnboarded(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	identity := testIdentity()

	fx.userRepo.EXPECT().FindUserByID(ctx, identity.Subject).Return(&entity.User{ID: identity.Subject, Username: "ana"}, nil)

	_, err := fx.service.Onboard(ctx, identity, &usecase.OnboardInput{Username: "other"})

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyOnboarded))
}

func TestOnboardingService_Onboard_UsernameTaken(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	identity := testIdentity()

	fx.userRepo.EXPECT().FindUserByID(ctx, identity.Subject).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().UsernameExists(ctx, "popular").Return(true, nil)

	_, err := fx.service.Onboard(ctx, identity, &usecase.OnboardInput{Username: "popular"})

	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestOnboardingService_Onboard_ConcurrentClaim(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()
	identity := testIdentity()

	fx.userRepo.EXPECT().FindUserByID(ctx, identity.Subject).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().UsernameExists(ctx, "racer").Return(false, nil)
	fx.userRepo.EXPECT().CreateUser(ctx, mock.Anything).Return(repository.ErrUsernameTaken)

	_, err := fx.service.Onboard(ctx, identity, &usecase.OnboardInput{Username: "racer"})

	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestOnboardingService_GetStatus(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "new").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindUserByID(ctx, "done").Return(&entity.User{ID: "done", Username: "done_user"}, nil)

	status, err := fx.service.GetStatus(ctx, "new")
	require.NoError(t, err)
	assert.False(t, status.Onboarded)

	status, err = fx.service.GetStatus(ctx, "done")
	require.NoError(t, err)
	assert.True(t, status.Onboarded)
	assert.Equal(t, "done_user", status.Username)
}

func TestOnboardingService_CurrentUser_RequiresOnboarding(t *testing.T) {
	fx := createTestOnboardingService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "new").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentUser(ctx, "new")

	assert.True(t, errors.Is(err, domainerrors.ErrOnboardingRequired))
}
