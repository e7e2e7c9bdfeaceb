package repository

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/errors"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when a coupon does not exist or belongs to another user.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines ownership-scoped coupon persistence.
type CouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) error
	FindCouponByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Coupon, error)
	ListCouponsByUser(ctx context.Context, userID string) ([]*entity.Coupon, error)
	ListActiveCouponsByUser(ctx context.Context, userID string) ([]*entity.Coupon, error)
	CountActiveCouponsByUser(ctx context.Context, userID string) (int64, error)
	UpdateCoupon(ctx context.Context, coupon *entity.Coupon) error
	DeleteCoupon(ctx context.Context, id uuid.UUID, userID string) error
}
