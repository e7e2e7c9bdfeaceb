package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       string    `gorm:"type:varchar(191);not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  *string   `gorm:"type:text"`
	AffiliateURL string    `gorm:"type:text;not null"`
	ImageURL     *string   `gorm:"type:text"`
	Price        *string   `gorm:"type:varchar(64)"`
	Active       bool      `gorm:"not null"` // no gorm default, false must reach the INSERT
	Clicks       int64     `gorm:"not null;default:0"`
	SortOrder    int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CouponModel mirrors the 'coupons' table.
type CouponModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `gorm:"type:varchar(191);not null;index"`
	StoreName string    `gorm:"type:varchar(255);not null"`
	Code      string    `gorm:"type:varchar(128);not null"`
	Discount  string    `gorm:"type:varchar(128);not null"`
	Link      *string   `gorm:"type:text"`
	Active    bool      `gorm:"not null"`
	Clicks    int64     `gorm:"not null;default:0"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// PartnerModel mirrors the 'partners' table.
type PartnerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `gorm:"type:varchar(191);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	SiteURL   string    `gorm:"type:text;not null"`
	LogoURL   *string   `gorm:"type:text"`
	Active    bool      `gorm:"not null"`
	Clicks    int64     `gorm:"not null;default:0"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}
