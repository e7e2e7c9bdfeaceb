package impl

import (
	"context"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reorderService struct {
	txManager repository.TransactionManager
}

// ReorderServiceParams holds dependencies for ReorderService, injected by Fx.
type ReorderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
}

// NewReorderService creates a new reorder service instance
func NewReorderService(params ReorderServiceParams) usecase.ReorderUsecase {
	return &reorderService{
		txManager: params.TxManager,
	}
}

// Reorder sets every listed item to its position, or none of them.
func (s *reorderService) Reorder(ctx context.Context, userID string, input *usecase.ReorderInput) error {
	itemType := entity.ItemType(input.Type)
	if !itemType.IsValid() {
		return domainerrors.ErrInvalidItemType
	}

	if len(input.List) == 0 {
		return nil
	}

	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		itemRepo := factory.NewItemRepository()

		for _, position := range input.List {
			if err := itemRepo.SetItemOrder(ctx, itemType, userID, position.ID, position.Position); err != nil {
				if errors.Is(err, repository.ErrItemNotFound) {
					return domainerrors.ErrNotFound.WithMessage(string(itemType) + " not found")
				}

				return errors.Wrap(err, "failed to reorder items")
			}
		}

		return nil
	})
}
