// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"creatorhub/config"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var themeColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	socialLinkRepo repository.SocialLinkRepository
	plan           usecase.PlanUsecase
	qrCode         service.QRCodeService
	baseURL        string
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	SocialLinkRepo repository.SocialLinkRepository
	Plan           usecase.PlanUsecase
	QRCode         service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		socialLinkRepo: params.SocialLinkRepo,
		plan:           params.Plan,
		qrCode:         params.QRCode,
		baseURL:        strings.TrimRight(params.Config.App.BaseURL, "/"),
		logger:         params.Logger,
	}
}

// GetProfile returns the caller's account and social links.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user not found")
	}

	links, err := srv.socialLinkRepo.FindSocialLinksByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load social links")
	}

	return &usecase.ProfileOutput{User: user, SocialLinks: links}, nil
}

// UpdateProfile saves name, bio, avatar and, when present, the full set of social links.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	links, err := toSocialLinks(input.SocialLinks)
	if err != nil {
		return nil, err
	}

	if links != nil {
		if err := srv.plan.CheckSocialLinkQuota(ctx, userID, links.FilledCount()); err != nil {
			return nil, err
		}
	}

	output := &usecase.ProfileOutput{}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		socialLinkRepo := repoFactory.NewSocialLinkRepository()

		user, err := userRepo.FindUserByID(ctx, userID)
		if err != nil {
			return notFound(err, repository.ErrUserNotFound, "user not found")
		}

		user.Name = strings.TrimSpace(input.Name)
		user.Bio = input.Bio
		user.AvatarURL = entity.NullIfEmpty(input.AvatarURL)

		if err := userRepo.UpdateUser(ctx, user); err != nil {
			return notFound(err, repository.ErrUserNotFound, "user not found")
		}

		if links != nil {
			if err := socialLinkRepo.ReplaceSocialLinks(ctx, userID, links); err != nil {
				return errors.Wrap(err, "failed to save social links")
			}
		}

		stored, err := socialLinkRepo.FindSocialLinksByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load social links")
		}

		output.User = user
		output.SocialLinks = stored

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.InfoContext(ctx, "Profile updated", slog.String("user_id", userID))

	return output, nil
}

// toSocialLinks validates network keys and applies the visibility default.
// A nil input yields nil, meaning the stored links stay untouched.
func toSocialLinks(input map[string]usecase.SocialLinkInput) (entity.SocialLinks, error) {
	if input == nil {
		return nil, nil
	}

	links := make(entity.SocialLinks, len(input))
	fields := make(map[string]string)

	for key, link := range input {
		network := entity.SocialNetwork(strings.ToLower(key))
		if !network.IsValid() {
			fields["social_links."+key] = "unknown social network"

			continue
		}

		url := strings.TrimSpace(link.URL)
		links[network] = entity.SocialLink{
			URL:     url,
			Visible: boolOrDefault(link.Visible, url != ""),
		}
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	return links, nil
}

// UpdateSettings saves the accent color and the theme preset.
func (srv *profileService) UpdateSettings(ctx context.Context, userID string, input *usecase.UpdateSettingsInput) (*entity.User, error) {
	if !themeColorPattern.MatchString(input.ThemeColor) {
		return nil, domainerrors.NewFieldError("theme_color", "must be a hex color such as #1a2b3c")
	}

	var theme *entity.Theme
	if input.Theme != nil {
		found, ok := entity.LookupTheme(entity.ThemeKey(*input.Theme))
		if !ok {
			return nil, domainerrors.NewFieldError("theme", "unknown theme")
		}
		theme = &found
	}

	if theme != nil && theme.Pro {
		isPro, err := srv.plan.IsPro(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !isPro {
			return nil, domainerrors.ErrProThemeRequired
		}
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user not found")
	}

	user.ThemeColor = input.ThemeColor
	if theme != nil {
		user.Theme = theme.Key
	}

	if err := srv.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user not found")
	}

	return user, nil
}

// ListThemes returns the theme catalogue.
func (srv *profileService) ListThemes() []entity.Theme {
	return entity.Themes
}

// GenerateQRCode renders the caller's public profile URL as a PNG QR code.
func (srv *profileService) GenerateQRCode(ctx context.Context, userID string) ([]byte, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "user not found")
	}

	png, err := srv.qrCode.GenerateProfileQR(srv.baseURL + "/" + user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
