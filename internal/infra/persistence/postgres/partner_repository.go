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

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// CreatePartner persists a new partner.
func (repo *partnerRepository) CreatePartner(ctx context.Context, partner *entity.Partner) error {
	if partner.ID == uuid.Nil {
		partner.ID = uuid.New()
	}
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required partner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// FindPartnerByIDAndUser retrieves a partner owned by userID.
func (repo *partnerRepository) FindPartnerByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Partner, error) {
	var partnerM model.PartnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&partnerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	return toPartnerDomain(&partnerM), nil
}

// ListPartnersByUser returns every partner of the user in display order.
func (repo *partnerRepository) ListPartnersByUser(ctx context.Context, userID string) ([]*entity.Partner, error) {
	return repo.list(ctx, repo.db.Where("user_id = ?", userID))
}

// ListActivePartnersByUser returns the active partners of the user in display order.
func (repo *partnerRepository) ListActivePartnersByUser(ctx context.Context, userID string) ([]*entity.Partner, error) {
	return repo.list(ctx, repo.db.Where("user_id = ? AND active = ?", userID, true))
}

func (repo *partnerRepository) list(ctx context.Context, query *gorm.DB) ([]*entity.Partner, error) {
	var partnersM []*model.PartnerModel

	if err := query.WithContext(ctx).
		Order(itemListOrder).
		Find(&partnersM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, 0, len(partnersM))
	for _, partnerM := range partnersM {
		partners = append(partners, toPartnerDomain(partnerM))
	}

	return partners, nil
}

// CountActivePartnersByUser counts the active partners of the user.
func (repo *partnerRepository) CountActivePartnersByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count partners")
	}

	return count, nil
}

// UpdatePartner saves the editable fields of a partner owned by partner.UserID.
func (repo *partnerRepository) UpdatePartner(ctx context.Context, partner *entity.Partner) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("id = ? AND user_id = ?", partner.ID, partner.UserID).
		Updates(map[string]any{
			"name":       partner.Name,
			"site_url":   partner.SiteURL,
			"logo_url":   partner.LogoURL,
			"active":     partner.Active,
			"updated_at": now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	partner.UpdatedAt = now

	return nil
}

// DeletePartner removes a partner owned by userID.
func (repo *partnerRepository) DeletePartner(ctx context.Context, id uuid.UUID, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PartnerModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete partner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	return &entity.Partner{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		SiteURL:   data.SiteURL,
		LogoURL:   data.LogoURL,
		Active:    data.Active,
		Clicks:    data.Clicks,
		Order:     data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	if data == nil {
		return nil
	}

	return &model.PartnerModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		SiteURL:   data.SiteURL,
		LogoURL:   data.LogoURL,
		Active:    data.Active,
		Clicks:    data.Clicks,
		SortOrder: data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
