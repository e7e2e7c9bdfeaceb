package usecase

import (
	"context"

	"creatorhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase manages the affiliate products of a creator.
type ProductUsecase interface {
	ListProducts(ctx context.Context, userID string) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, userID string, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, userID string, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, userID string, id uuid.UUID) error
}

// CouponUsecase manages the discount coupons of a creator.
type CouponUsecase interface {
	ListCoupons(ctx context.Context, userID string) ([]*entity.Coupon, error)
	CreateCoupon(ctx context.Context, userID string, input *CreateCouponInput) (*entity.Coupon, error)
	UpdateCoupon(ctx context.Context, userID string, id uuid.UUID, input *UpdateCouponInput) (*entity.Coupon, error)
	DeleteCoupon(ctx context.Context, userID string, id uuid.UUID) error
}

// PartnerUsecase manages the partner brands of a creator.
type PartnerUsecase interface {
	ListPartners(ctx context.Context, userID string) ([]*entity.Partner, error)
	CreatePartner(ctx context.Context, userID string, input *CreatePartnerInput) (*entity.Partner, error)
	UpdatePartner(ctx context.Context, userID string, id uuid.UUID, input *UpdatePartnerInput) (*entity.Partner, error)
	DeletePartner(ctx context.Context, userID string, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateProductInput is the product creation form. Active defaults to true.
type CreateProductInput struct {
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Description  string `json:"description"`
	AffiliateURL string `json:"affiliate_url" validate:"required,url"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	Price        string `json:"price" validate:"max=64"`
	Active       *bool  `json:"active"`
}

// UpdateProductInput carries the fields to change. Nil fields are left untouched.
type UpdateProductInput struct {
	Title        *string `json:"title" validate:"omitnil,min=3,max=255"`
	Description  *string `json:"description"`
	AffiliateURL *string `json:"affiliate_url" validate:"omitnil,url"`
	ImageURL     *string `json:"image_url" validate:"omitempty,url"`
	Price        *string `json:"price" validate:"omitnil,max=64"`
	Active       *bool   `json:"active"`
}

// CreateCouponInput is the coupon creation form. Active defaults to true.
type CreateCouponInput struct {
	StoreName string `json:"store_name" validate:"required,min=2,max=255"`
	Code      string `json:"code" validate:"required,min=3,max=128"`
	Discount  string `json:"discount" validate:"required,min=1,max=128"`
	Link      string `json:"link" validate:"omitempty,url"`
	Active    *bool  `json:"active"`
}

// UpdateCouponInput carries the fields to change. Nil fields are left untouched.
type UpdateCouponInput struct {
	StoreName *string `json:"store_name" validate:"omitnil,min=1,max=255"`
	Code      *string `json:"code" validate:"omitnil,min=1,max=128"`
	Discount  *string `json:"discount" validate:"omitnil,min=1,max=128"`
	Link      *string `json:"link"`
	Active    *bool   `json:"active"`
}

// CreatePartnerInput is the partner creation form. Active defaults to true.
type CreatePartnerInput struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	SiteURL string `json:"site_url" validate:"required,url"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
	Active  *bool  `json:"active"`
}

// UpdatePartnerInput carries the fields to change. Nil fields are left untouched.
type UpdatePartnerInput struct {
	Name    *string `json:"name" validate:"omitnil,min=2,max=255"`
	SiteURL *string `json:"site_url" validate:"omitnil,url"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
	Active  *bool   `json:"active"`
}
