package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"
)

// PublicProfileUsecase resolves the public page of a creator.
type PublicProfileUsecase interface {
	GetPublicProfile(ctx context.Context, username string) (*PublicProfile, error)
}

// PublicProfile is everything the public page renders.
type PublicProfile struct {
	Username    string                    `json:"username"`
	Name        string                    `json:"name"`
	Bio         string                    `json:"bio"`
	AvatarURL   *string                   `json:"avatar_url"`
	ThemeColor  string                    `json:"theme_color"`
	Theme       entity.Theme              `json:"theme"`
	IsPro       bool                      `json:"is_pro"`
	SocialLinks []entity.PublicSocialLink `json:"social_links"`
	Products    []*entity.Product         `json:"products"`
	Coupons     []*entity.Coupon          `json:"coupons"`
	Partners    []*entity.Partner         `json:"partners"`
}
