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

// socialLinkRepository implements the repository.SocialLinkRepository interface.
type socialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository is the constructor for socialLinkRepository.
func NewSocialLinkRepository(db *gorm.DB) repository.SocialLinkRepository {
	return &socialLinkRepository{
		db: db,
	}
}

// FindSocialLinksByUser returns the links of a user keyed by network.
func (repo *socialLinkRepository) FindSocialLinksByUser(ctx context.Context, userID string) (entity.SocialLinks, error) {
	var rows []*model.SocialLinkModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find social links")
	}

	links := make(entity.SocialLinks, len(rows))
	for _, row := range rows {
		links[entity.SocialNetwork(row.Network)] = entity.SocialLink{
			URL:     row.URL,
			Visible: row.Visible,
		}
	}

	return links, nil
}

// ReplaceSocialLinks deletes every link of the user and inserts the given set.
// Callers run it inside a transaction together with the user update.
func (repo *socialLinkRepository) ReplaceSocialLinks(ctx context.Context, userID string, links entity.SocialLinks) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.SocialLinkModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear social links")
	}

	if len(links) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*model.SocialLinkModel, 0, len(links))
	for _, network := range entity.SocialNetworks {
		link, ok := links[network]
		if !ok {
			continue
		}
		rows = append(rows, &model.SocialLinkModel{
			UserID:    userID,
			Network:   string(network),
			URL:       link.URL,
			Visible:   link.Visible,
			UpdatedAt: now,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save social links")
	}

	return nil
}
