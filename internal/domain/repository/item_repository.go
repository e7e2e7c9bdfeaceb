package repository

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/errors"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when a typed item lookup misses.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository covers the operations shared by products, coupons and partners
// that are addressed through an entity.ItemType discriminator.
type ItemRepository interface {
	// FindItemRef resolves the owner of an item. Returns ErrItemNotFound on miss.
	FindItemRef(ctx context.Context, itemType entity.ItemType, id uuid.UUID) (*entity.ItemRef, error)

	// SetItemOrder moves one item of the user to position. Returns ErrItemNotFound when
	// the item does not exist or is owned by someone else.
	SetItemOrder(ctx context.Context, itemType entity.ItemType, userID string, id uuid.UUID, position int) error

	// IncrementClicks adds one to the item's clicks counter.
	IncrementClicks(ctx context.Context, itemType entity.ItemType, id uuid.UUID) error

	// TopItemsByClicks returns the user's most clicked items across all types.
	TopItemsByClicks(ctx context.Context, userID string, limit int) ([]*entity.ItemClicks, error)
}
