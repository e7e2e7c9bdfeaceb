package impl

import (
	"context"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	mockRepo "creatorhub/internal/mocks/repository"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// publicProfileServiceFixtures holds all test dependencies for public profile tests.
type publicProfileServiceFixtures struct {
	service        usecase.PublicProfileUsecase
	userRepo       *mockRepo.MockUserRepository
	socialLinkRepo *mockRepo.MockSocialLinkRepository
	productRepo    *mockRepo.MockProductRepository
	couponRepo     *mockRepo.MockCouponRepository
	partnerRepo    *mockRepo.MockPartnerRepository
	plan           *mockUsecase.MockPlanUsecase
}

func createTestPublicProfileService(t *testing.T) publicProfileServiceFixtures {
	fx := publicProfileServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		socialLinkRepo: mockRepo.NewMockSocialLinkRepository(t),
		productRepo:    mockRepo.NewMockProductRepository(t),
		couponRepo:     mockRepo.NewMockCouponRepository(t),
		partnerRepo:    mockRepo.NewMockPartnerRepository(t),
		plan:           mockUsecase.NewMockPlanUsecase(t),
	}

	fx.service = NewPublicProfileService(PublicProfileServiceParams{
		UserRepo:       fx.userRepo,
		SocialLinkRepo: fx.socialLinkRepo,
		ProductRepo:    fx.productRepo,
		CouponRepo:     fx.couponRepo,
		PartnerRepo:    fx.partnerRepo,
		Plan:           fx.plan,
	})

	return fx
}

func products(n int) []*entity.Product {
	list := make([]*entity.Product, n)
	for i := range list {
		list[i] = &entity.Product{ID: uuid.New(), Title: "Product", Order: i, Active: true}
	}

	return list
}

// expectProfileContent stubs the lists and links of the creator "u1".
func expectProfileContent(fx publicProfileServiceFixtures, isPro bool) {
	ctx := context.Background()

	fx.plan.EXPECT().IsPro(ctx, "u1").Return(isPro, nil)
	fx.socialLinkRepo.EXPECT().FindSocialLinksByUser(ctx, "u1").Return(entity.SocialLinks{
		entity.SocialInstagram: {URL: "https://instagram.com/ana", Visible: true},
		entity.SocialTikTok:    {URL: "https://tiktok.com/@ana", Visible: false},
		entity.SocialYouTube:   {URL: "https://youtube.com/@ana", Visible: true},
		entity.SocialGitHub:    {URL: "https://github.com/ana", Visible: true},
		entity.SocialTwitch:    {URL: "", Visible: true},
	}, nil)
	fx.productRepo.EXPECT().ListActiveProductsByUser(ctx, "u1").Return(products(5), nil)
	fx.couponRepo.EXPECT().ListActiveCouponsByUser(ctx, "u1").Return([]*entity.Coupon{{Code: "A"}, {Code: "B"}}, nil)
	fx.partnerRepo.EXPECT().ListActivePartnersByUser(ctx, "u1").Return(nil, nil)
}

func TestPublicProfileService_FreeOwnerIsCapped(t *testing.T) {
	fx := createTestPublicProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByUsername(ctx, "ana").Return(&entity.User{
		ID: "u1", Username: "ana", Name: "Ana", ThemeColor: "#ff0000", Theme: entity.ThemeSunset,
	}, nil)
	expectProfileContent(fx, false)
	fx.plan.EXPECT().Limits().Return(entity.DefaultFreeLimits)

	profile, err := fx.service.GetPublicProfile(ctx, "ana")

	require.NoError(t, err)
	assert.False(t, profile.IsPro)
	assert.Len(t, profile.Products, 3)
	assert.Equal(t, 2, profile.Products[2].Order)
	assert.Len(t, profile.Coupons, 1)
	assert.Empty(t, profile.Partners)
	assert.Equal(t, []entity.PublicSocialLink{
		{Network: entity.SocialInstagram, URL: "https://instagram.com/ana"},
		{Network: entity.SocialYouTube, URL: "https://youtube.com/@ana"},
	}, profile.SocialLinks)
	assert.Equal(t, entity.ThemeLight, profile.Theme.Key)
	assert.Equal(t, "#ff0000", profile.ThemeColor)
}

func TestPublicProfileService_ProOwnerSeesEverything(t *testing.T) {
	fx := createTestPublicProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByUsername(ctx, "ana").Return(&entity.User{ID: "u1", Username: "ana", Theme: entity.ThemeSunset}, nil)
	expectProfileContent(fx, true)

	profile, err := fx.service.GetPublicProfile(ctx, "ana")

	require.NoError(t, err)
	assert.True(t, profile.IsPro)
	assert.Len(t, profile.Products, 5)
	assert.Len(t, profile.Coupons, 2)
	assert.Len(t, profile.SocialLinks, 3)
	assert.Equal(t, entity.ThemeSunset, profile.Theme.Key)
}

func TestPublicProfileService_UnknownUsername(t *testing.T) {
	fx := createTestPublicProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetPublicProfile(ctx, "nobody")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCapList(t *testing.T) {
	assert.Equal(t, []int{1, 2}, capList([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, capList([]int{1, 2, 3}, 0))
	assert.Equal(t, []int{1}, capList([]int{1}, 5))
}
