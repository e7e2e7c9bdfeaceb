package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"
)

// ReorderUsecase repositions the items of one type in a single transaction.
type ReorderUsecase interface {
	Reorder(ctx context.Context, userID string, input *ReorderInput) error
}

// ReorderInput assigns new positions to items of one type.
type ReorderInput struct {
	Type string                `json:"type" validate:"required"`
	List []entity.ItemPosition `json:"list" validate:"required"`
}
