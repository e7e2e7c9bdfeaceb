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

type productService struct {
	productRepo repository.ProductRepository
	plan        usecase.PlanUsecase
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Plan        usecase.PlanUsecase
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		plan:        params.Plan,
	}
}

// ListProducts returns every product of the user in display order.
func (s *productService) ListProducts(ctx context.Context, userID string) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProductsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct adds a product when the plan quota allows it.
func (s *productService) CreateProduct(ctx context.Context, userID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := s.plan.CheckItemQuota(ctx, userID, entity.ItemTypeProduct); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        input.Title,
		Description:  entity.NullIfEmpty(input.Description),
		AffiliateURL: input.AffiliateURL,
		ImageURL:     entity.NullIfEmpty(input.ImageURL),
		Price:        entity.NullIfEmpty(input.Price),
		Active:       boolOrDefault(input.Active, true),
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct applies the present fields to a product owned by the user.
func (s *productService) UpdateProduct(ctx context.Context, userID string, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, notFound(err, repository.ErrProductNotFound, "product not found")
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = entity.NullIfEmpty(*input.Description)
	}
	if input.AffiliateURL != nil {
		product.AffiliateURL = *input.AffiliateURL
	}
	if input.ImageURL != nil {
		product.ImageURL = entity.NullIfEmpty(*input.ImageURL)
	}
	if input.Price != nil {
		product.Price = entity.NullIfEmpty(*input.Price)
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, notFound(err, repository.ErrProductNotFound, "product not found")
	}

	return product, nil
}

// DeleteProduct removes a product owned by the user.
func (s *productService) DeleteProduct(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.productRepo.DeleteProduct(ctx, id, userID); err != nil {
		return notFound(err, repository.ErrProductNotFound, "product not found")
	}

	return nil
}
