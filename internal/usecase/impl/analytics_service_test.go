package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "creatorhub/internal/delivery/context"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	mockRepo "creatorhub/internal/mocks/repository"
	mockSvc "creatorhub/internal/mocks/service"
	"creatorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var analyticsNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

// analyticsServiceFixtures holds all test dependencies for analytics service tests.
type analyticsServiceFixtures struct {
	service       usecase.AnalyticsUsecase
	txManager     *mockRepo.MockTransactionManager
	analyticsRepo *mockRepo.MockAnalyticsRepository
	itemRepo      *mockRepo.MockItemRepository
	publisher     *mockSvc.MockEventPublisher
	metrics       *mockSvc.MockMetrics
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	fx := analyticsServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		analyticsRepo: mockRepo.NewMockAnalyticsRepository(t),
		itemRepo:      mockRepo.NewMockItemRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		metrics:       mockSvc.NewMockMetrics(t),
	}

	svc := NewAnalyticsService(AnalyticsServiceParams{
		TxManager:     fx.txManager,
		AnalyticsRepo: fx.analyticsRepo,
		ItemRepo:      fx.itemRepo,
		Publisher:     fx.publisher,
		Metrics:       fx.metrics,
		Logger:        discardLogger(),
	}).(*analyticsService)
	svc.now = fixedClock(analyticsNow)
	fx.service = svc

	return fx
}

// expectRecordedClick prepares a transaction that resolves itemID to ownerID and records the click.
func expectRecordedClick(t *testing.T, fx analyticsServiceFixtures, itemType entity.ItemType, itemID uuid.UUID, ownerID string) {
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		itemRepo := mockRepo.NewMockItemRepository(t)
		analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)

		factory.EXPECT().NewItemRepository().Return(itemRepo)
		factory.EXPECT().NewAnalyticsRepository().Return(analyticsRepo)
		itemRepo.EXPECT().FindItemRef(mock.Anything, itemType, itemID).
			Return(&entity.ItemRef{ID: itemID, Type: itemType, UserID: ownerID}, nil)
		analyticsRepo.EXPECT().CreateLog(mock.Anything, mock.MatchedBy(func(log *entity.AnalyticsLog) bool {
			return log.ItemID == itemID && log.UserID == ownerID && log.Type == itemType && log.CreatedAt.Equal(analyticsNow)
		})).Return(nil)
		itemRepo.EXPECT().IncrementClicks(mock.Anything, itemType, itemID).Return(nil)
	})
}

func TestAnalyticsService_TrackClick_Success(t *testing.T) {
	fx := createTestAnalyticsService(t)
	itemID := uuid.New()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	expectRecordedClick(t, fx, entity.ItemTypeProduct, itemID, "owner")
	fx.metrics.EXPECT().ClickTracked("product").Return()
	fx.publisher.EXPECT().
		PublishClickEvent(mock.Anything, mock.MatchedBy(func(event *service.ClickEvent) bool {
			return event.ItemID == itemID.String() &&
				event.UserID == "owner" &&
				event.ItemType == "product" &&
				event.RequestID == "req-1" &&
				event.EventID != ""
		})).
		Return(nil)

	err := fx.service.TrackClick(ctx, &usecase.TrackClickInput{ID: itemID.String(), Type: "product"})

	require.NoError(t, err)
}

func TestAnalyticsService_TrackClick_PublisherFailureIsSwallowed(t *testing.T) {
	fx := createTestAnalyticsService(t)
	itemID := uuid.New()

	expectRecordedClick(t, fx, entity.ItemTypePartner, itemID, "owner")
	fx.metrics.EXPECT().ClickTracked("partner").Return()
	fx.publisher.EXPECT().PublishClickEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := fx.service.TrackClick(context.Background(), &usecase.TrackClickInput{ID: itemID.String(), Type: "partner"})

	require.NoError(t, err)
}

func TestAnalyticsService_TrackClick_PublishOutlivesCanceledRequest(t *testing.T) {
	fx := createTestAnalyticsService(t)
	itemID := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())

	expectRecordedClick(t, fx, entity.ItemTypeCoupon, itemID, "owner")
	fx.metrics.EXPECT().ClickTracked("coupon").Run(func(string) { cancel() }).Return()
	fx.publisher.EXPECT().
		PublishClickEvent(mock.MatchedBy(func(publishCtx context.Context) bool { return publishCtx.Err() == nil }), mock.Anything).
		Return(nil)

	err := fx.service.TrackClick(ctx, &usecase.TrackClickInput{ID: itemID.String(), Type: "coupon"})

	require.NoError(t, err)
}

func TestAnalyticsService_TrackClick_Rejections(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		fx := createTestAnalyticsService(t)

		err := fx.service.TrackClick(context.Background(), &usecase.TrackClickInput{ID: uuid.NewString(), Type: "story"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidItemType))
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestAnalyticsService(t)

		err := fx.service.TrackClick(context.Background(), &usecase.TrackClickInput{ID: "not-a-uuid", Type: "product"})

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("unknown item has no side effects", func(t *testing.T) {
		fx := createTestAnalyticsService(t)
		itemID := uuid.New()

		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			itemRepo := mockRepo.NewMockItemRepository(t)

			factory.EXPECT().NewItemRepository().Return(itemRepo)
			itemRepo.EXPECT().FindItemRef(mock.Anything, entity.ItemTypeProduct, itemID).Return(nil, repository.ErrItemNotFound)
		})

		err := fx.service.TrackClick(context.Background(), &usecase.TrackClickInput{ID: itemID.String(), Type: "product"})

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestAnalyticsService_GetSummary(t *testing.T) {
	fx := createTestAnalyticsService(t)
	ctx := context.Background()
	since := analyticsNow.AddDate(0, 0, -7)
	top := []*entity.ItemClicks{{ID: uuid.New(), Type: entity.ItemTypeProduct, Label: "Camera", Clicks: 40}}

	fx.analyticsRepo.EXPECT().CountClicksByType(ctx, "u1", since).Return([]entity.ClickCount{
		{Type: entity.ItemTypeProduct, Clicks: 12},
		{Type: entity.ItemTypePartner, Clicks: 3},
	}, nil)
	fx.itemRepo.EXPECT().TopItemsByClicks(ctx, "u1", usecase.TopItemsLimit).Return(top, nil)

	summary, err := fx.service.GetSummary(ctx, "u1", 7)

	require.NoError(t, err)
	assert.Equal(t, 7, summary.Days)
	assert.Equal(t, int64(15), summary.TotalClicks)
	assert.Equal(t, []entity.ClickCount{
		{Type: entity.ItemTypeProduct, Clicks: 12},
		{Type: entity.ItemTypeCoupon, Clicks: 0},
		{Type: entity.ItemTypePartner, Clicks: 3},
	}, summary.ByType)
	assert.Equal(t, top, summary.TopItems)
}

func TestAnalyticsService_GetSummary_ClampsWindow(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		expected int
	}{
		{name: "default", days: 0, expected: usecase.DefaultSummaryDays},
		{name: "negative", days: -3, expected: usecase.DefaultSummaryDays},
		{name: "too large", days: 5000, expected: usecase.MaxSummaryDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAnalyticsService(t)
			since := analyticsNow.AddDate(0, 0, -tt.expected)

			fx.analyticsRepo.EXPECT().CountClicksByType(mock.Anything, "u1", since).Return(nil, nil)
			fx.itemRepo.EXPECT().TopItemsByClicks(mock.Anything, "u1", usecase.TopItemsLimit).Return(nil, nil)

			summary, err := fx.service.GetSummary(context.Background(), "u1", tt.days)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, summary.Days)
			assert.Equal(t, int64(0), summary.TotalClicks)
		})
	}
}
