package impl

import (
	"context"
	"testing"
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/entity"
	mockRepo "creatorhub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T, emails ...string) (*adminService, *mockRepo.MockUserRepository, *mockRepo.MockSubscriptionRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	cfg := testConfig()
	cfg.Admin = &config.AdminConfig{Emails: emails}

	svc := NewAdminService(AdminServiceParams{
		UserRepo:         userRepo,
		SubscriptionRepo: subscriptionRepo,
		Config:           cfg,
	}).(*adminService)

	return svc, userRepo, subscriptionRepo
}

func TestAdminService_IsAdmin(t *testing.T) {
	svc, _, _ := createTestAdminService(t, " Owner@Example.com ", "")

	assert.True(t, svc.IsAdmin("owner@example.com"))
	assert.True(t, svc.IsAdmin("OWNER@example.COM"))
	assert.False(t, svc.IsAdmin("guest@example.com"))
	assert.False(t, svc.IsAdmin(""))
}

func TestAdminService_ListUsers(t *testing.T) {
	svc, userRepo, subscriptionRepo := createTestAdminService(t, "owner@example.com")
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)
	ctx := context.Background()

	overviews := []*entity.UserOverview{
		{User: &entity.User{ID: "pro"}, ProductCount: 9},
		{User: &entity.User{ID: "lapsed"}},
		{User: &entity.User{ID: "free"}, CouponCount: 1},
	}

	userRepo.EXPECT().ListUserOverviews(ctx).Return(overviews, nil)
	subscriptionRepo.EXPECT().ListSubscriptions(ctx).Return([]*entity.UserSubscription{
		proSubscription("pro", now.Add(72*time.Hour)),
		proSubscription("lapsed", now.Add(-72*time.Hour)),
	}, nil)

	users, err := svc.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.True(t, users[0].IsPro)
	assert.False(t, users[1].IsPro)
	assert.False(t, users[2].IsPro)
}
