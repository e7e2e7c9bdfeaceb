package postgres

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const usernameUniqueIndex = "idx_users_username"

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err) == usernameUniqueIndex {
				return repository.ErrUsernameTaken
			}

			return repository.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user by identity subject.
func (repo *userRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUserByUsername retrieves a user by public slug.
func (repo *userRepository) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// UsernameExists reports whether the slug is already claimed.
func (repo *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

// UpdateUser saves the mutable profile and appearance fields.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":        user.Name,
			"bio":         user.Bio,
			"avatar_url":  user.AvatarURL,
			"theme_color": user.ThemeColor,
			"theme":       string(user.Theme),
			"updated_at":  now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// ListUserOverviews returns every user with item counts, newest first.
func (repo *userRepository) ListUserOverviews(ctx context.Context) ([]*entity.UserOverview, error) {
	var rows []model.UserOverviewRow

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select(`users.*,
			(SELECT COUNT(*) FROM products p WHERE p.user_id = users.id) AS product_count,
			(SELECT COUNT(*) FROM coupons c WHERE c.user_id = users.id) AS coupon_count,
			(SELECT COUNT(*) FROM partners pa WHERE pa.user_id = users.id) AS partner_count`).
		Order("users.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	overviews := make([]*entity.UserOverview, 0, len(rows))
	for i := range rows {
		overviews = append(overviews, &entity.UserOverview{
			User:         toUserDomain(&rows[i].UserModel),
			ProductCount: rows[i].ProductCount,
			CouponCount:  rows[i].CouponCount,
			PartnerCount: rows[i].PartnerCount,
		})
	}

	return overviews, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:         data.ID,
		Username:   data.Username,
		Email:      data.Email,
		Name:       data.Name,
		Bio:        data.Bio,
		AvatarURL:  data.AvatarURL,
		ThemeColor: data.ThemeColor,
		Theme:      entity.ThemeKey(data.Theme),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID,
		Username:   data.Username,
		Email:      data.Email,
		Name:       data.Name,
		Bio:        data.Bio,
		AvatarURL:  data.AvatarURL,
		ThemeColor: data.ThemeColor,
		Theme:      string(data.Theme),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
