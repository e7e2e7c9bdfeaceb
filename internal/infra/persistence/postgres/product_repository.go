package postgres

import (
	"context"
	"time"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/repository"
	"creatorhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemListOrder is the display order shared by every item list.
const itemListOrder = "sort_order ASC, created_at DESC"

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByIDAndUser retrieves a product owned by userID.
func (repo *productRepository) FindProductByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// ListProductsByUser returns every product of the user in display order.
func (repo *productRepository) ListProductsByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.Where("user_id = ?", userID))
}

// ListActiveProductsByUser returns the active products of the user in display order.
func (repo *productRepository) ListActiveProductsByUser(ctx context.Context, userID string) ([]*entity.Product, error) {
	return repo.list(ctx, repo.db.Where("user_id = ? AND active = ?", userID, true))
}

func (repo *productRepository) list(ctx context.Context, query *gorm.DB) ([]*entity.Product, error) {
	var productsM []*model.ProductModel

	if err := query.WithContext(ctx).
		Order(itemListOrder).
		Find(&productsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productsM))
	for _, productM := range productsM {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// CountActiveProductsByUser counts the active products of the user.
func (repo *productRepository) CountActiveProductsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// UpdateProduct saves the editable fields of a product owned by product.UserID.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND user_id = ?", product.ID, product.UserID).
		Updates(map[string]any{
			"title":         product.Title,
			"description":   product.Description,
			"affiliate_url": product.AffiliateURL,
			"image_url":     product.ImageURL,
			"price":         product.Price,
			"active":        product.Active,
			"updated_at":    now,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = now

	return nil
}

// DeleteProduct removes a product owned by userID.
func (repo *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Description:  data.Description,
		AffiliateURL: data.AffiliateURL,
		ImageURL:     data.ImageURL,
		Price:        data.Price,
		Active:       data.Active,
		Clicks:       data.Clicks,
		Order:        data.SortOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Description:  data.Description,
		AffiliateURL: data.AffiliateURL,
		ImageURL:     data.ImageURL,
		Price:        data.Price,
		Active:       data.Active,
		Clicks:       data.Clicks,
		SortOrder:    data.Order,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
