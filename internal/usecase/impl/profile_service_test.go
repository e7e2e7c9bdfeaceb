package impl

import (
	"context"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	mockRepo "creatorhub/internal/mocks/repository"
	mockSvc "creatorhub/internal/mocks/service"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service        usecase.ProfileUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	socialLinkRepo *mockRepo.MockSocialLinkRepository
	plan           *mockUsecase.MockPlanUsecase
	qrCode         *mockSvc.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		socialLinkRepo: mockRepo.NewMockSocialLinkRepository(t),
		plan:           mockUsecase.NewMockPlanUsecase(t),
		qrCode:         mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:      fx.txManager,
		UserRepo:       fx.userRepo,
		SocialLinkRepo: fx.socialLinkRepo,
		Plan:           fx.plan,
		QRCode:         fx.qrCode,
		Config:         testConfig(),
		Logger:         discardLogger(),
	})

	return fx
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: "u1", Username: "ana"}
	links := entity.SocialLinks{entity.SocialYouTube: {URL: "https://youtube.com/@ana", Visible: true}}

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(user, nil)
	fx.socialLinkRepo.EXPECT().FindSocialLinksByUser(ctx, "u1").Return(links, nil)

	profile, err := fx.service.GetProfile(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, user, profile.User)
	assert.Equal(t, links, profile.SocialLinks)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_UpdateProfile_RewritesUserAndLinks(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := &entity.User{ID: "u1", Username: "ana", Name: "Old"}

	fx.plan.EXPECT().CheckSocialLinkQuota(ctx, "u1", 2).Return(nil)

	var saved entity.SocialLinks
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		socialLinkRepo := mockRepo.NewMockSocialLinkRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewSocialLinkRepository().Return(socialLinkRepo)
		userRepo.EXPECT().FindUserByID(ctx, "u1").Return(existing, nil)
		userRepo.EXPECT().UpdateUser(ctx, existing).Return(nil)
		socialLinkRepo.EXPECT().
			ReplaceSocialLinks(ctx, "u1", mock.AnythingOfType("entity.SocialLinks")).
			Run(func(_ context.Context, _ string, links entity.SocialLinks) { saved = links }).
			Return(nil)
		socialLinkRepo.EXPECT().FindSocialLinksByUser(ctx, "u1").RunAndReturn(
			func(context.Context, string) (entity.SocialLinks, error) { return saved, nil },
		)
	})

	output, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{
		Name:      "  Ana Maria ",
		Bio:       "Travel creator",
		AvatarURL: "",
		SocialLinks: map[string]usecase.SocialLinkInput{
			"instagram": {URL: "https://instagram.com/ana"},
			"tiktok":    {URL: "https://tiktok.com/@ana", Visible: boolPtr(false)},
			"github":    {URL: ""},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", output.User.Name)
	assert.Nil(t, output.User.AvatarURL)
	assert.True(t, output.SocialLinks[entity.SocialInstagram].Visible)
	assert.False(t, output.SocialLinks[entity.SocialTikTok].Visible)
	assert.False(t, output.SocialLinks[entity.SocialGitHub].Visible)
}

func TestProfileService_UpdateProfile_NilLinksKeepsStored(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := &entity.User{ID: "u1", Username: "ana"}
	stored := entity.SocialLinks{entity.SocialTwitch: {URL: "https://twitch.tv/ana", Visible: true}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		socialLinkRepo := mockRepo.NewMockSocialLinkRepository(t)

		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewSocialLinkRepository().Return(socialLinkRepo)
		userRepo.EXPECT().FindUserByID(ctx, "u1").Return(existing, nil)
		userRepo.EXPECT().UpdateUser(ctx, existing).Return(nil)
		socialLinkRepo.EXPECT().FindSocialLinksByUser(ctx, "u1").Return(stored, nil)
	})

	output, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, stored, output.SocialLinks)
}

func TestProfileService_UpdateProfile_UnknownNetwork(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), "u1", &usecase.UpdateProfileInput{
		Name:        "Ana",
		SocialLinks: map[string]usecase.SocialLinkInput{"myspace": {URL: "https://myspace.com/ana"}},
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields(), "social_links.myspace")
}

func TestProfileService_UpdateProfile_SocialQuota(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.plan.EXPECT().CheckSocialLinkQuota(ctx, "u1", 3).Return(domainerrors.ErrQuotaExceeded)

	_, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{
		Name: "Ana",
		SocialLinks: map[string]usecase.SocialLinkInput{
			"instagram": {URL: "https://instagram.com/a"},
			"youtube":   {URL: "https://youtube.com/a"},
			"twitter":   {URL: "https://twitter.com/a"},
		},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrQuotaExceeded))
}

func TestProfileService_UpdateSettings(t *testing.T) {
	tests := []struct {
		name      string
		input     *usecase.UpdateSettingsInput
		setup     func(fx profileServiceFixtures)
		expectErr error
		expected  entity.ThemeKey
	}{
		{
			name:      "invalid color",
			input:     &usecase.UpdateSettingsInput{ThemeColor: "red"},
			expectErr: domainerrors.ErrValidationFailed,
		},
		{
			name:      "unknown theme",
			input:     &usecase.UpdateSettingsInput{ThemeColor: "#fff", Theme: strPtr("neon")},
			expectErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "pro theme on free plan",
			input: &usecase.UpdateSettingsInput{ThemeColor: "#fff", Theme: strPtr("sunset")},
			setup: func(fx profileServiceFixtures) {
				fx.plan.EXPECT().IsPro(mock.Anything, "u1").Return(false, nil)
			},
			expectErr: domainerrors.ErrProThemeRequired,
		},
		{
			name:  "pro theme on pro plan",
			input: &usecase.UpdateSettingsInput{ThemeColor: "#1A2b3C", Theme: strPtr("ocean")},
			setup: func(fx profileServiceFixtures) {
				fx.plan.EXPECT().IsPro(mock.Anything, "u1").Return(true, nil)
				fx.userRepo.EXPECT().FindUserByID(mock.Anything, "u1").Return(&entity.User{ID: "u1", Theme: entity.ThemeLight}, nil)
				fx.userRepo.EXPECT().UpdateUser(mock.Anything, mock.Anything).Return(nil)
			},
			expected: entity.ThemeOcean,
		},
		{
			name:  "color only keeps theme",
			input: &usecase.UpdateSettingsInput{ThemeColor: "#000"},
			setup: func(fx profileServiceFixtures) {
				fx.userRepo.EXPECT().FindUserByID(mock.Anything, "u1").Return(&entity.User{ID: "u1", Theme: entity.ThemeDark}, nil)
				fx.userRepo.EXPECT().UpdateUser(mock.Anything, mock.Anything).Return(nil)
			},
			expected: entity.ThemeDark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			user, err := fx.service.UpdateSettings(context.Background(), "u1", tt.input)
			if tt.expectErr != nil {
				assert.True(t, errors.Is(err, tt.expectErr), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, user.Theme)
			assert.Equal(t, tt.input.ThemeColor, user.ThemeColor)
		})
	}
}

func TestProfileService_GenerateQRCode(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "u1").Return(&entity.User{ID: "u1", Username: "ana"}, nil)
	fx.qrCode.EXPECT().GenerateProfileQR("https://creatorhub.test/ana").Return([]byte("png"), nil)

	png, err := fx.service.GenerateQRCode(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestProfileService_ListThemes(t *testing.T) {
	fx := createTestProfileService(t)

	assert.Equal(t, entity.Themes, fx.service.ListThemes())
}
