// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username unique constraint is violated.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserAlreadyExists is returned when a user row with the same ID exists.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the interface for creator account persistence.
type UserRepository interface {
	// CreateUser persists a new user. Returns ErrUsernameTaken or ErrUserAlreadyExists on conflicts.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by identity provider subject.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// FindUserByUsername retrieves a user by public slug.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// UsernameExists reports whether the slug is already claimed.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// UpdateUser saves the mutable profile and appearance fields.
	UpdateUser(ctx context.Context, user *entity.User) error

	// ListUserOverviews returns every user with item counts, newest first.
	// IsPro is left for the caller to fill in.
	ListUserOverviews(ctx context.Context) ([]*entity.UserOverview, error)
}
