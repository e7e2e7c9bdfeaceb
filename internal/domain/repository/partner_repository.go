package repository

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/errors"

	"github.com/google/uuid"
)

// ErrPartnerNotFound is returned when a partner does not exist or belongs to another user.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerRepository defines ownership-scoped partner persistence.
type PartnerRepository interface {
	CreatePartner(ctx context.Context, partner *entity.Partner) error
	FindPartnerByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Partner, error)
	ListPartnersByUser(ctx context.Context, userID string) ([]*entity.Partner, error)
	ListActivePartnersByUser(ctx context.Context, userID string) ([]*entity.Partner, error)
	CountActivePartnersByUser(ctx context.Context, userID string) (int64, error)
	UpdatePartner(ctx context.Context, partner *entity.Partner) error
	DeletePartner(ctx context.Context, id uuid.UUID, userID string) error
}
