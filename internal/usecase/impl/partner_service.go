package impl

import (
	"context"

	"creatorhub/internal/domain/entity"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type partnerService struct {
	partnerRepo repository.PartnerRepository
	plan        usecase.PlanUsecase
}

// PartnerServiceParams holds dependencies for PartnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	Plan        usecase.PlanUsecase
}

// NewPartnerService creates a new partner service instance
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: params.PartnerRepo,
		plan:        params.Plan,
	}
}

// ListPartners returns every partner of the user in display order.
func (s *partnerService) ListPartners(ctx context.Context, userID string) ([]*entity.Partner, error) {
	partners, err := s.partnerRepo.ListPartnersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	return partners, nil
}

// CreatePartner adds a partner when the plan quota allows it.
func (s *partnerService) CreatePartner(ctx context.Context, userID string, input *usecase.CreatePartnerInput) (*entity.Partner, error) {
	if err := s.plan.CheckItemQuota(ctx, userID, entity.ItemTypePartner); err != nil {
		return nil, err
	}

	partner := &entity.Partner{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    input.Name,
		SiteURL: input.SiteURL,
		LogoURL: entity.NullIfEmpty(input.LogoURL),
		Active:  boolOrDefault(input.Active, true),
	}

	if err := s.partnerRepo.CreatePartner(ctx, partner); err != nil {
		return nil, errors.Wrap(err, "failed to create partner")
	}

	return partner, nil
}

// UpdatePartner applies the present fields to a partner owned by the user.
func (s *partnerService) UpdatePartner(ctx context.Context, userID string, id uuid.UUID, input *usecase.UpdatePartnerInput) (*entity.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrPartnerNotFound, "partner not found")
	}

	if input.Name != nil {
		partner.Name = *input.Name
	}
	if input.SiteURL != nil {
		partner.SiteURL = *input.SiteURL
	}
	if input.LogoURL != nil {
		partner.LogoURL = entity.NullIfEmpty(*input.LogoURL)
	}
	if input.Active != nil {
		partner.Active = *input.Active
	}

	if err := s.partnerRepo.UpdatePartner(ctx, partner); err != nil {
		return nil, notFound(err, repository.ErrPartnerNotFound, "partner not found")
	}

	return partner, nil
}

// DeletePartner removes a partner owned by the user.
func (s *partnerService) DeletePartner(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.partnerRepo.DeletePartner(ctx, id, userID); err != nil {
		return notFound(err, repository.ErrPartnerNotFound, "partner not found")
	}

	return nil
}
