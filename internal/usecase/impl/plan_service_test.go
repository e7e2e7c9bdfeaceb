package impl

import (
	"context"
	"testing"
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	mockRepo "creatorhub/internal/mocks/repository"
	mockSvc "creatorhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// planServiceFixtures holds all test dependencies for plan service tests.
type planServiceFixtures struct {
	service          *planService
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	productRepo      *mockRepo.MockProductRepository
	couponRepo       *mockRepo.MockCouponRepository
	partnerRepo      *mockRepo.MockPartnerRepository
	socialLinkRepo   *mockRepo.MockSocialLinkRepository
	metrics          *mockSvc.MockMetrics
}

func createTestPlanService(t *testing.T) planServiceFixtures {
	fx := planServiceFixtures{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		productRepo:      mockRepo.NewMockProductRepository(t),
		couponRepo:       mockRepo.NewMockCouponRepository(t),
		partnerRepo:      mockRepo.NewMockPartnerRepository(t),
		socialLinkRepo:   mockRepo.NewMockSocialLinkRepository(t),
		metrics:          mockSvc.NewMockMetrics(t),
	}

	svc := NewPlanService(PlanServiceParams{
		SubscriptionRepo: fx.subscriptionRepo,
		ProductRepo:      fx.productRepo,
		CouponRepo:       fx.couponRepo,
		PartnerRepo:      fx.partnerRepo,
		SocialLinkRepo:   fx.socialLinkRepo,
		Metrics:          fx.metrics,
		Config:           testConfig(),
	}).(*planService)
	svc.now = fixedClock(planNow)
	fx.service = svc

	return fx
}

func proSubscription(userID string, periodEnd time.Time) *entity.UserSubscription {
	return &entity.UserSubscription{
		UserID:                 userID,
		StripeCustomerID:       strPtr("cus_1"),
		StripeSubscriptionID:   strPtr("sub_1"),
		StripePriceID:          strPtr("price_pro"),
		StripeCurrentPeriodEnd: &periodEnd,
	}
}

func TestPlanService_IsPro(t *testing.T) {
	tests := []struct {
		name         string
		subscription *entity.UserSubscription
		findErr      error
		expected     bool
		expectErr    bool
	}{
		{name: "no subscription row", findErr: repository.ErrSubscriptionNotFound, expected: false},
		{name: "active period", subscription: proSubscription("u1", planNow.Add(time.Hour)), expected: true},
		{name: "within grace day", subscription: proSubscription("u1", planNow.Add(-23*time.Hour)), expected: true},
		{name: "lapsed", subscription: proSubscription("u1", planNow.Add(-25*time.Hour)), expected: false},
		{name: "customer without price", subscription: &entity.UserSubscription{UserID: "u1", StripeCustomerID: strPtr("cus_1")}, expected: false},
		{name: "repository failure", findErr: errors.New("connection reset"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPlanService(t)
			ctx := context.Background()

			fx.subscriptionRepo.EXPECT().FindSubscriptionByUserID(ctx, "u1").Return(tt.subscription, tt.findErr)

			isPro, err := fx.service.IsPro(ctx, "u1")
			if tt.expectErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, isPro)
		})
	}
}

func TestPlanService_CheckItemQuota_UnderLimit(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserID(ctx, "u1").Return(nil, repository.ErrSubscriptionNotFound)
	fx.productRepo.EXPECT().CountActiveProductsByUser(ctx, "u1").Return(int64(2), nil)

	err := fx.service.CheckItemQuota(ctx, "u1", entity.ItemTypeProduct)

	require.NoError(t, err)
}

func TestPlanService_CheckItemQuota_LimitReached(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserID(ctx, "u1").Return(nil, repository.ErrSubscriptionNotFound)
	fx.couponRepo.EXPECT().CountActiveCouponsByUser(ctx, "u1").Return(int64(1), nil)
	fx.metrics.EXPECT().QuotaRejected("coupons").Return()

	err := fx.service.CheckItemQuota(ctx, "u1", entity.ItemTypeCoupon)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	assert.Contains(t, err.Error(), "up to 1 coupons")
}

func TestPlanService_CheckItemQuota_ProSkipsCount(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserID(ctx, "u1").Return(proSubscription("u1", planNow.Add(time.Hour)), nil)

	err := fx.service.CheckItemQuota(ctx, "u1", entity.ItemTypePartner)

	require.NoError(t, err)
}

func TestPlanService_CheckSocialLinkQuota(t *testing.T) {
	t.Run("within limit does not load the plan", func(t *testing.T) {
		fx := createTestPlanService(t)

		require.NoError(t, fx.service.CheckSocialLinkQuota(context.Background(), "u1", 2))
	})

	t.Run("free user over limit", func(t *testing.T) {
		fx := createTestPlanService(t)
		ctx := context.Background()

		fx.subscriptionRepo.EXPECT().FindSubscriptionByUserID(ctx, "u1").Return(nil, repository.ErrSubscriptionNotFound)
		fx.metrics.EXPECT().QuotaRejected("social_links").Return()

		err := fx.service.CheckSocialLinkQuota(ctx, "u1", 3)

		assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
	})

	t.Run("pro user over limit", func(t *testing.T) {
		fx := createTestPlanService(t)
		ctx := context.Background()

		fx.subscriptionRepo.EXPECT().FindSubscriptionByUserID(ctx, "u1").Return(proSubscription("u1", planNow.Add(time.Hour)), nil)

		require.NoError(t, fx.service.CheckSocialLinkQuota(ctx, "u1", 10))
	})
}

func TestPlanService_GetPlan(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserID(ctx, "u1").Return(nil, repository.ErrSubscriptionNotFound)
	fx.productRepo.EXPECT().CountActiveProductsByUser(ctx, "u1").Return(int64(3), nil)
	fx.couponRepo.EXPECT().CountActiveCouponsByUser(ctx, "u1").Return(int64(0), nil)
	fx.partnerRepo.EXPECT().CountActivePartnersByUser(ctx, "u1").Return(int64(1), nil)
	fx.socialLinkRepo.EXPECT().FindSocialLinksByUser(ctx, "u1").Return(entity.SocialLinks{
		entity.SocialInstagram: {URL: "https://instagram.com/a", Visible: true},
		entity.SocialGitHub:    {URL: "", Visible: false},
	}, nil)

	overview, err := fx.service.GetPlan(ctx, "u1")

	require.NoError(t, err)
	assert.False(t, overview.IsPro)
	assert.Equal(t, entity.DefaultFreeLimits, overview.Limits)
	assert.Equal(t, int64(3), overview.Usage.Products)
	assert.Equal(t, int64(1), overview.Usage.Partners)
	assert.Equal(t, 1, overview.Usage.SocialLinks)
}

func TestFreeLimits_Overrides(t *testing.T) {
	cfg := testConfig()
	cfg.Plans = &config.PlansConfig{FreeProducts: 5}

	limits := freeLimits(cfg)

	assert.Equal(t, 5, limits.Products)
	assert.Equal(t, entity.DefaultFreeLimits.Coupons, limits.Coupons)
	assert.Equal(t, entity.DefaultFreeLimits, freeLimits(nil))
}
