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

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// CreateLog appends one click log row.
func (repo *analyticsRepository) CreateLog(ctx context.Context, log *entity.AnalyticsLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	logM := &model.AnalyticsLogModel{
		ID:        log.ID,
		ItemID:    log.ItemID,
		Type:      string(log.Type),
		UserID:    log.UserID,
		CreatedAt: log.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidItemType
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create analytics log")
	}

	return nil
}

// CountClicksByType aggregates the user's clicks since the given instant.
func (repo *analyticsRepository) CountClicksByType(ctx context.Context, userID string, since time.Time) ([]entity.ClickCount, error) {
	var rows []model.ClickCountRow

	if err := repo.db.WithContext(ctx).
		Model(&model.AnalyticsLogModel{}).
		Select("type, COUNT(*) AS clicks").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("type").
		Order("type").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count clicks")
	}

	counts := make([]entity.ClickCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.ClickCount{
			Type:   entity.ItemType(row.Type),
			Clicks: row.Clicks,
		})
	}

	return counts, nil
}
