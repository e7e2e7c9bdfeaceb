package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"
)

// AdminUsecase serves the super-admin console.
type AdminUsecase interface {
	// IsAdmin reports whether the email belongs to a configured super-admin.
	IsAdmin(email string) bool

	// ListUsers returns every user with item counts and plan, newest first.
	ListUsers(ctx context.Context) ([]*entity.UserOverview, error)
}
