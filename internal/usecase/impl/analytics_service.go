package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "creatorhub/internal/delivery/context"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publishTimeout bounds how long a click waits on the event publisher.
const publishTimeout = 2 * time.Second

type analyticsService struct {
	txManager     repository.TransactionManager
	analyticsRepo repository.AnalyticsRepository
	itemRepo      repository.ItemRepository
	publisher     service.EventPublisher
	metrics       service.Metrics
	logger        *slog.Logger
	now           func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AnalyticsRepo repository.AnalyticsRepository
	ItemRepo      repository.ItemRepository
	Publisher     service.EventPublisher
	Metrics       service.Metrics
	Logger        *slog.Logger
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		txManager:     params.TxManager,
		analyticsRepo: params.AnalyticsRepo,
		itemRepo:      params.ItemRepo,
		publisher:     params.Publisher,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// TrackClick appends a log for the item's owner and bumps the item counter atomically.
func (s *analyticsService) TrackClick(ctx context.Context, input *usecase.TrackClickInput) error {
	itemType := entity.ItemType(input.Type)
	if !itemType.IsValid() {
		return domainerrors.ErrInvalidItemType
	}

	itemID, err := uuid.Parse(input.ID)
	if err != nil {
		return domainerrors.ErrNotFound.WithMessage("item not found")
	}

	clickLog := &entity.AnalyticsLog{
		ID:        uuid.New(),
		ItemID:    itemID,
		Type:      itemType,
		CreatedAt: s.now(),
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		itemRepo := factory.NewItemRepository()

		ref, err := itemRepo.FindItemRef(ctx, itemType, itemID)
		if err != nil {
			return notFound(err, repository.ErrItemNotFound, "item not found")
		}
		clickLog.UserID = ref.UserID

		if err := factory.NewAnalyticsRepository().CreateLog(ctx, clickLog); err != nil {
			return errors.Wrap(err, "failed to record click")
		}

		if err := itemRepo.IncrementClicks(ctx, itemType, itemID); err != nil {
			return errors.Wrap(err, "failed to increment clicks")
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.ClickTracked(string(itemType))
	s.publish(ctx, clickLog)

	return nil
}

// publish emits the click event. Failures are logged and never reach the caller.
func (s *analyticsService) publish(ctx context.Context, clickLog *entity.AnalyticsLog) {
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := &service.ClickEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   clickLog.ID.String(),
		ItemID:    clickLog.ItemID.String(),
		ItemType:  string(clickLog.Type),
		UserID:    clickLog.UserID,
		ClickedAt: clickLog.CreatedAt,
	}

	if err := s.publisher.PublishClickEvent(publishCtx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to publish click event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

// GetSummary aggregates the caller's clicks over the last days.
func (s *analyticsService) GetSummary(ctx context.Context, userID string, days int) (*usecase.AnalyticsSummary, error) {
	if days <= 0 {
		days = usecase.DefaultSummaryDays
	}
	if days > usecase.MaxSummaryDays {
		days = usecase.MaxSummaryDays
	}

	since := s.now().AddDate(0, 0, -days)

	counts, err := s.analyticsRepo.CountClicksByType(ctx, userID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count clicks")
	}

	topItems, err := s.itemRepo.TopItemsByClicks(ctx, userID, usecase.TopItemsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank items")
	}

	summary := &usecase.AnalyticsSummary{
		Days:     days,
		Since:    since,
		ByType:   make([]entity.ClickCount, 0, len(entity.ItemTypes)),
		TopItems: topItems,
	}

	byType := make(map[entity.ItemType]int64, len(counts))
	for _, count := range counts {
		byType[count.Type] = count.Clicks
	}
	for _, itemType := range entity.ItemTypes {
		summary.ByType = append(summary.ByType, entity.ClickCount{Type: itemType, Clicks: byType[itemType]})
		summary.TotalClicks += byType[itemType]
	}

	return summary, nil
}
