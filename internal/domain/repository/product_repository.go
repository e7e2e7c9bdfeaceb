package repository

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist or belongs to another user.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines ownership-scoped product persistence.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) error
	FindProductByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Product, error)
	ListProductsByUser(ctx context.Context, userID string) ([]*entity.Product, error)
	ListActiveProductsByUser(ctx context.Context, userID string) ([]*entity.Product, error)
	CountActiveProductsByUser(ctx context.Context, userID string) (int64, error)
	// UpdateProduct saves the editable fields, filtered on both ID and UserID.
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID, userID string) error
}
