package postgres

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// CreateCoupon persists a new coupon.
func (repo *couponRepository) CreateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required coupon information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// FindCouponByIDAndUser retrieves a coupon owned by userID.
func (repo *couponRepository) FindCouponByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	return toCouponDomain(&couponM), nil
}

// ListCouponsByUser returns every coupon of the user in display order.
func (repo *couponRepository) ListCouponsByUser(ctx context.Context, userID string) ([]*entity.Coupon, error) {
	return repo.list(ctx, repo.db.Where("user_id = ?", userID))
}

// ListActiveCouponsByUser returns the active coupons of the user in display order.
func (repo *couponRepository) ListActiveCouponsByUser(ctx context.Context, userID string) ([]*entity.Coupon, error) {
	return repo.list(ctx, repo.db.Where("user_id = ? AND active = ?", userID, true))
}

func (repo *couponRepository) list(ctx context.Context, query *gorm.DB) ([]*entity.Coupon, error) {
	var couponsM []*model.CouponModel

	if err := query.WithContext(ctx).
		Order(itemListOrder).
		Find(&couponsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponsM))
	for _, couponM := range couponsM {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// CountActiveCouponsByUser counts the active coupons of the user.
func (repo *couponRepository) CountActiveCouponsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count coupons")
	}

	return count, nil
}

// UpdateCoupon saves the editable fields of a coupon owned by coupon.UserID.
func (repo *couponRepository) UpdateCoupon(ctx context.Context, coupon *entity.Coupon) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ? AND user_id = ?", coupon.ID, coupon.UserID).
		Updates(map[string]any{
			"store_name": coupon.StoreName,
			"code":       coupon.Code,
			"discount":   coupon.Discount,
			"link":       coupon.Link,
			"active":     coupon.Active,
			"updated_at": now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	coupon.UpdatedAt = now

	return nil
}

// DeleteCoupon removes a coupon owned by userID.
func (repo *couponRepository) DeleteCoupon(ctx context.Context, id uuid.UUID, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CouponModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreName: data.StoreName,
		Code:      data.Code,
		Discount:  data.Discount,
		Link:      data.Link,
		Active:    data.Active,
		Clicks:    data.Clicks,
		Order:     data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreName: data.StoreName,
		Code:      data.Code,
		Discount:  data.Discount,
		Link:      data.Link,
		Active:    data.Active,
		Clicks:    data.Clicks,
		SortOrder: data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
