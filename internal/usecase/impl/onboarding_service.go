package impl

import (
	"context"
	"log/slog"
	"strings"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type onboardingService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewOnboardingService creates a new onboarding service instance
func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	return &onboardingService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// GetStatus reports whether the identity already claimed a username.
func (s *onboardingService) GetStatus(ctx context.Context, userID string) (*usecase.OnboardingStatus, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.OnboardingStatus{Onboarded: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &usecase.OnboardingStatus{Onboarded: true, Username: user.Username}, nil
}

// Onboard claims a username for the identity and creates its account.
func (s *onboardingService) Onboard(ctx context.Context, identity *service.Identity, input *usecase.OnboardInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < entity.UsernameMinLength {
		return nil, domainerrors.NewFieldError("username", "must be at least 3 characters")
	}
	if len(username) > entity.UsernameMaxLength {
		return nil, domainerrors.NewFieldError("username", "must be at most 64 characters")
	}
	if !entity.IsValidUsername(username) {
		return nil, domainerrors.NewFieldError("username", "may only contain lowercase letters, numbers, hyphens and underscores")
	}
	if entity.IsReservedUsername(username) {
		return nil, domainerrors.NewFieldError("username", "is reserved")
	}

	_, err := s.userRepo.FindUserByID(ctx, identity.Subject)
	switch {
	case err == nil:
		return nil, domainerrors.ErrAlreadyOnboarded
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to find user")
	}

	taken, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if taken {
		return nil, domainerrors.ErrUsernameTaken
	}

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = username
	}

	user := &entity.User{
		ID:         identity.Subject,
		Username:   username,
		Email:      identity.Email,
		Name:       name,
		AvatarURL:  entity.NullIfEmpty(identity.Picture),
		ThemeColor: entity.DefaultThemeColor,
		Theme:      entity.DefaultTheme,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return nil, domainerrors.ErrUsernameTaken
		case errors.Is(err, repository.ErrUserAlreadyExists):
			return nil, domainerrors.ErrAlreadyOnboarded
		default:
			return nil, errors.Wrap(err, "failed to create user")
		}
	}

	s.logger.InfoContext(ctx, "Creator onboarded",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// CurrentUser loads the onboarded account of the identity.
func (s *onboardingService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrOnboardingRequired
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
