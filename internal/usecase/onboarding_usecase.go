// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/domain/service"
)

// OnboardingUsecase moves an authenticated identity to an onboarded creator account.
type OnboardingUsecase interface {
	// GetStatus reports whether the identity already claimed a username.
	GetStatus(ctx context.Context, userID string) (*OnboardingStatus, error)

	// Onboard claims a username and creates the account. The step is irreversible.
	Onboard(ctx context.Context, identity *service.Identity, input *OnboardInput) (*entity.User, error)

	// CurrentUser loads the onboarded account of the identity or fails with ErrOnboardingRequired.
	CurrentUser(ctx context.Context, userID string) (*entity.User, error)
}

// OnboardInput is the onboarding form.
type OnboardInput struct {
	Username string `json:"username" validate:"required"`
}

// OnboardingStatus is the onboarding state of an identity.
type OnboardingStatus struct {
	Onboarded bool   `json:"onboarded"`
	Username  string `json:"username,omitempty"`
}
