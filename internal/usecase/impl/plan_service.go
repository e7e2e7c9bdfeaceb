package impl

import (
	"context"
	"fmt"
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type planService struct {
	subscriptionRepo repository.SubscriptionRepository
	productRepo      repository.ProductRepository
	couponRepo       repository.CouponRepository
	partnerRepo      repository.PartnerRepository
	socialLinkRepo   repository.SocialLinkRepository
	metrics          service.Metrics
	limits           entity.PlanLimits
	now              func() time.Time
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	ProductRepo      repository.ProductRepository
	CouponRepo       repository.CouponRepository
	PartnerRepo      repository.PartnerRepository
	SocialLinkRepo   repository.SocialLinkRepository
	Metrics          service.Metrics
	Config           *config.Config
}

// NewPlanService creates a new plan service instance
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		subscriptionRepo: params.SubscriptionRepo,
		productRepo:      params.ProductRepo,
		couponRepo:       params.CouponRepo,
		partnerRepo:      params.PartnerRepo,
		socialLinkRepo:   params.SocialLinkRepo,
		metrics:          params.Metrics,
		limits:           freeLimits(params.Config),
		now:              time.Now,
	}
}

// freeLimits applies the configured overrides to the default free quotas.
func freeLimits(cfg *config.Config) entity.PlanLimits {
	limits := entity.DefaultFreeLimits
	if cfg == nil || cfg.Plans == nil {
		return limits
	}

	if cfg.Plans.FreeProducts > 0 {
		limits.Products = cfg.Plans.FreeProducts
	}
	if cfg.Plans.FreeCoupons > 0 {
		limits.Coupons = cfg.Plans.FreeCoupons
	}
	if cfg.Plans.FreePartners > 0 {
		limits.Partners = cfg.Plans.FreePartners
	}
	if cfg.Plans.FreeSocialLinks > 0 {
		limits.SocialLinks = cfg.Plans.FreeSocialLinks
	}

	return limits
}

// IsPro reports whether the user currently holds the Pro plan.
func (s *planService) IsPro(ctx context.Context, userID string) (bool, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to load subscription")
	}

	return subscription.IsPro(s.now()), nil
}

// Limits returns the free plan quotas.
func (s *planService) Limits() entity.PlanLimits {
	return s.limits
}

// CheckItemQuota fails with ErrQuotaExceeded when a free user is at the item quota.
func (s *planService) CheckItemQuota(ctx context.Context, userID string, itemType entity.ItemType) error {
	isPro, err := s.IsPro(ctx, userID)
	if err != nil {
		return err
	}
	if isPro {
		return nil
	}

	limit := s.limits.ForItem(itemType)
	count, err := s.countActive(ctx, userID, itemType)
	if err != nil {
		return err
	}

	if !entity.Allows(limit, count) {
		resource := itemResource(itemType)
		s.metrics.QuotaRejected(resource)

		return domainerrors.ErrQuotaExceeded.WithMessage(
			fmt.Sprintf("The free plan allows up to %d %s. Upgrade to Pro to add more.", limit, resource),
		)
	}

	return nil
}

// CheckSocialLinkQuota fails with ErrQuotaExceeded when a free user fills too many networks.
func (s *planService) CheckSocialLinkQuota(ctx context.Context, userID string, filled int) error {
	if s.limits.SocialLinks <= 0 || filled <= s.limits.SocialLinks {
		return nil
	}

	isPro, err := s.IsPro(ctx, userID)
	if err != nil {
		return err
	}
	if isPro {
		return nil
	}

	s.metrics.QuotaRejected("social_links")

	return domainerrors.ErrQuotaExceeded.WithMessage(
		fmt.Sprintf("The free plan allows up to %d social links. Upgrade to Pro to add more.", s.limits.SocialLinks),
	)
}

// GetPlan reports plan, quotas and current usage.
func (s *planService) GetPlan(ctx context.Context, userID string) (*usecase.PlanOverview, error) {
	isPro, err := s.IsPro(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &usecase.PlanOverview{
		IsPro:  isPro,
		Limits: s.limits,
	}

	if overview.Usage.Products, err = s.countActive(ctx, userID, entity.ItemTypeProduct); err != nil {
		return nil, err
	}
	if overview.Usage.Coupons, err = s.countActive(ctx, userID, entity.ItemTypeCoupon); err != nil {
		return nil, err
	}
	if overview.Usage.Partners, err = s.countActive(ctx, userID, entity.ItemTypePartner); err != nil {
		return nil, err
	}

	links, err := s.socialLinkRepo.FindSocialLinksByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load social links")
	}
	overview.Usage.SocialLinks = links.FilledCount()

	return overview, nil
}

func (s *planService) countActive(ctx context.Context, userID string, itemType entity.ItemType) (int64, error) {
	var (
		count int64
		err   error
	)

	switch itemType {
	case entity.ItemTypeProduct:
		count, err = s.productRepo.CountActiveProductsByUser(ctx, userID)
	case entity.ItemTypeCoupon:
		count, err = s.couponRepo.CountActiveCouponsByUser(ctx, userID)
	case entity.ItemTypePartner:
		count, err = s.partnerRepo.CountActivePartnersByUser(ctx, userID)
	default:
		return 0, domainerrors.ErrInvalidItemType
	}
	if err != nil {
		return 0, errors.Wrapf(err, "failed to count %s", itemResource(itemType))
	}

	return count, nil
}

func itemResource(itemType entity.ItemType) string {
	return string(itemType) + "s"
}
