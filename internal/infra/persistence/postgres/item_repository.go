package postgres

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemTables maps each item kind to its table and display label column.
var itemTables = map[entity.ItemType]struct {
	table string
	label string
}{
	entity.ItemTypeProduct: {table: "products", label: "title"},
	entity.ItemTypeCoupon:  {table: "coupons", label: "store_name"},
	entity.ItemTypePartner: {table: "partners", label: "name"},
}

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

func tableFor(itemType entity.ItemType) (string, error) {
	meta, ok := itemTables[itemType]
	if !ok {
		return "", domainerrors.ErrInvalidItemType
	}

	return meta.table, nil
}

// FindItemRef resolves the owner of an item.
func (repo *itemRepository) FindItemRef(ctx context.Context, itemType entity.ItemType, id uuid.UUID) (*entity.ItemRef, error) {
	table, err := tableFor(itemType)
	if err != nil {
		return nil, err
	}

	var row struct {
		ID     uuid.UUID
		UserID string
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Select("id, user_id").
		Where("id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find item")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrItemNotFound
	}

	return &entity.ItemRef{
		ID:     row.ID,
		Type:   itemType,
		UserID: row.UserID,
	}, nil
}

// SetItemOrder moves one owned item to position.
func (repo *itemRepository) SetItemOrder(ctx context.Context, itemType entity.ItemType, userID string, id uuid.UUID, position int) error {
	table, err := tableFor(itemType)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"sort_order": position,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reorder item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// IncrementClicks adds one to the item's clicks counter.
func (repo *itemRepository) IncrementClicks(ctx context.Context, itemType entity.ItemType, id uuid.UUID) error {
	table, err := tableFor(itemType)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment clicks")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// TopItemsByClicks returns the user's most clicked items across every type.
func (repo *itemRepository) TopItemsByClicks(ctx context.Context, userID string, limit int) ([]*entity.ItemClicks, error) {
	var rows []struct {
		ID     uuid.UUID
		Type   string
		Label  string
		Clicks int64
	}

	err := repo.db.WithContext(ctx).Raw(`
		SELECT id, 'product' AS type, title AS label, clicks FROM products WHERE user_id = @user
		UNION ALL
		SELECT id, 'coupon' AS type, store_name AS label, clicks FROM coupons WHERE user_id = @user
		UNION ALL
		SELECT id, 'partner' AS type, name AS label, clicks FROM partners WHERE user_id = @user
		ORDER BY clicks DESC, label ASC
		LIMIT @limit`,
		map[string]any{"user": userID, "limit": limit},
	).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank items by clicks")
	}

	items := make([]*entity.ItemClicks, 0, len(rows))
	for _, row := range rows {
		items = append(items, &entity.ItemClicks{
			ID:     row.ID,
			Type:   entity.ItemType(row.Type),
			Label:  row.Label,
			Clicks: row.Clicks,
		})
	}

	return items, nil
}
