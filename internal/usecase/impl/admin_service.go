package impl

import (
	"context"
	"strings"
	"time"

	"creatorhub/config"
	"creatorhub/internal/domain/entity"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	emails           map[string]struct{}
	now              func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	Config           *config.Config
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	emails := make(map[string]struct{})
	if params.Config.Admin != nil {
		for _, email := range params.Config.Admin.Emails {
			if email = normalizeEmail(email); email != "" {
				emails[email] = struct{}{}
			}
		}
	}

	return &adminService{
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		emails:           emails,
		now:              time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsAdmin reports whether the email belongs to a configured super-admin.
func (s *adminService) IsAdmin(email string) bool {
	email = normalizeEmail(email)
	if email == "" {
		return false
	}

	_, ok := s.emails[email]

	return ok
}

// ListUsers returns every user with item counts and the Pro flag.
func (s *adminService) ListUsers(ctx context.Context) ([]*entity.UserOverview, error) {
	overviews, err := s.userRepo.ListUserOverviews(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	subscriptions, err := s.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	now := s.now()
	pro := make(map[string]bool, len(subscriptions))
	for _, subscription := range subscriptions {
		pro[subscription.UserID] = subscription.IsPro(now)
	}

	for _, overview := range overviews {
		overview.IsPro = pro[overview.User.ID]
	}

	return overviews, nil
}
