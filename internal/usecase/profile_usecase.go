package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"
)

// ProfileUsecase manages the profile, social links and appearance of a creator.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*ProfileOutput, error)
	UpdateSettings(ctx context.Context, userID string, input *UpdateSettingsInput) (*entity.User, error)
	ListThemes() []entity.Theme
	GenerateQRCode(ctx context.Context, userID string) ([]byte, error)
}

// --- Input DTOs ---

// UpdateProfileInput is the profile form. A nil SocialLinks keeps the stored links.
type UpdateProfileInput struct {
	Name        string                     `json:"name" validate:"required,min=2,max=100"`
	Bio         string                     `json:"bio"`
	AvatarURL   string                     `json:"avatar_url" validate:"omitempty,url"`
	SocialLinks map[string]SocialLinkInput `json:"social_links" validate:"omitempty,dive"`
}

// SocialLinkInput is one network entry. Visible defaults to URL != "".
type SocialLinkInput struct {
	URL     string `json:"url" validate:"omitempty,url"`
	Visible *bool  `json:"visible"`
}

// UpdateSettingsInput is the appearance form.
type UpdateSettingsInput struct {
	ThemeColor string  `json:"theme_color" validate:"required"`
	Theme      *string `json:"theme"`
}

// --- Output DTOs ---

// ProfileOutput is the editable profile of the caller.
type ProfileOutput struct {
	User        *entity.User       `json:"user"`
	SocialLinks entity.SocialLinks `json:"social_links"`
}
