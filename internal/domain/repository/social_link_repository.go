package repository

import (
	"context"

	"creatorhub/internal/domain/entity"
)

// SocialLinkRepository persists the per-network social links of a user.
type SocialLinkRepository interface {
	// FindSocialLinksByUser returns the links of a user. Missing networks are absent from the map.
	FindSocialLinksByUser(ctx context.Context, userID string) (entity.SocialLinks, error)

	// ReplaceSocialLinks overwrites every link of the user with the given set.
	ReplaceSocialLinks(ctx context.Context, userID string, links entity.SocialLinks) error
}
