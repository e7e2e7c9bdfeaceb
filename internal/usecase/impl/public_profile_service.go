package impl

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type publicProfileService struct {
	userRepo       repository.UserRepository
	socialLinkRepo repository.SocialLinkRepository
	productRepo    repository.ProductRepository
	couponRepo     repository.CouponRepository
	partnerRepo    repository.PartnerRepository
	plan           usecase.PlanUsecase
}

// PublicProfileServiceParams holds dependencies for PublicProfileService, injected by Fx.
type PublicProfileServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	SocialLinkRepo repository.SocialLinkRepository
	ProductRepo    repository.ProductRepository
	CouponRepo     repository.CouponRepository
	PartnerRepo    repository.PartnerRepository
	Plan           usecase.PlanUsecase
}

// NewPublicProfileService creates a new public profile service instance
func NewPublicProfileService(params PublicProfileServiceParams) usecase.PublicProfileUsecase {
	return &publicProfileService{
		userRepo:       params.UserRepo,
		socialLinkRepo: params.SocialLinkRepo,
		productRepo:    params.ProductRepo,
		couponRepo:     params.CouponRepo,
		partnerRepo:    params.PartnerRepo,
		plan:           params.Plan,
	}
}

// GetPublicProfile resolves everything the public page of username renders.
// Lists of owners without Pro are cut to the free quotas; stored rows are left as they are.
func (s *publicProfileService) GetPublicProfile(ctx context.Context, username string) (*usecase.PublicProfile, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, notFound(err, repository.ErrUserNotFound, "profile not found")
	}

	isPro, err := s.plan.IsPro(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	links, err := s.socialLinkRepo.FindSocialLinksByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load social links")
	}

	products, err := s.productRepo.ListActiveProductsByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	coupons, err := s.couponRepo.ListActiveCouponsByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	partners, err := s.partnerRepo.ListActivePartnersByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	socials := links.Public()

	if !isPro {
		limits := s.plan.Limits()
		products = capList(products, limits.Products)
		coupons = capList(coupons, limits.Coupons)
		partners = capList(partners, limits.Partners)
		socials = capList(socials, limits.SocialLinks)
	}

	return &usecase.PublicProfile{
		Username:    user.Username,
		Name:        user.Name,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
		ThemeColor:  user.ThemeColor,
		Theme:       entity.ResolveTheme(user.Theme, isPro),
		IsPro:       isPro,
		SocialLinks: socials,
		Products:    products,
		Coupons:     coupons,
		Partners:    partners,
	}, nil
}

// capList keeps the first limit elements. A non-positive limit keeps everything.
func capList[T any](list []T, limit int) []T {
	if limit <= 0 || len(list) <= limit {
		return list
	}

	return list[:limit]
}
