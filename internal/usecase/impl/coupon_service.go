package impl

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type couponService struct {
	couponRepo repository.CouponRepository
	plan       usecase.PlanUsecase
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo repository.CouponRepository
	Plan       usecase.PlanUsecase
}

// NewCouponService creates a new coupon service instance
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo: params.CouponRepo,
		plan:       params.Plan,
	}
}

// ListCoupons returns every coupon of the user in display order.
func (s *couponService) ListCoupons(ctx context.Context, userID string) ([]*entity.Coupon, error) {
	coupons, err := s.couponRepo.ListCouponsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	return coupons, nil
}

// CreateCoupon adds a coupon when the plan quota allows it.
func (s *couponService) CreateCoupon(ctx context.Context, userID string, input *usecase.CreateCouponInput) (*entity.Coupon, error) {
	if err := s.plan.CheckItemQuota(ctx, userID, entity.ItemTypeCoupon); err != nil {
		return nil, err
	}

	coupon := &entity.Coupon{
		ID:        uuid.New(),
		UserID:    userID,
		StoreName: input.StoreName,
		Code:      input.Code,
		Discount:  input.Discount,
		Link:      entity.NullIfEmpty(input.Link),
		Active:    boolOrDefault(input.Active, true),
	}

	if err := s.couponRepo.CreateCoupon(ctx, coupon); err != nil {
		return nil, errors.Wrap(err, "failed to create coupon")
	}

	return coupon, nil
}

// UpdateCoupon applies the present fields to a coupon owned by the user.
func (s *couponService) UpdateCoupon(ctx context.Context, userID string, id uuid.UUID, input *usecase.UpdateCouponInput) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.FindCouponByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrCouponNotFound, "coupon not found")
	}

	if input.StoreName != nil {
		coupon.StoreName = *input.StoreName
	}
	if input.Code != nil {
		coupon.Code = *input.Code
	}
	if input.Discount != nil {
		coupon.Discount = *input.Discount
	}
	if input.Link != nil {
		coupon.Link = entity.NullIfEmpty(*input.Link)
	}
	if input.Active != nil {
		coupon.Active = *input.Active
	}

	if err := s.couponRepo.UpdateCoupon(ctx, coupon); err != nil {
		return nil, notFound(err, repository.ErrCouponNotFound, "coupon not found")
	}

	return coupon, nil
}

// DeleteCoupon removes a coupon owned by the user.
func (s *couponService) DeleteCoupon(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.couponRepo.DeleteCoupon(ctx, id, userID); err != nil {
		return notFound(err, repository.ErrCouponNotFound, "coupon not found")
	}

	return nil
}
