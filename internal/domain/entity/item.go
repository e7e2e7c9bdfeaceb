package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType discriminates the monetized item kinds that can be reordered and tracked.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeCoupon  ItemType = "coupon"
	ItemTypePartner ItemType = "partner"
)

// ItemTypes lists every item kind.
var ItemTypes = []ItemType{ItemTypeProduct, ItemTypeCoupon, ItemTypePartner}

// IsValid reports whether the item type is known.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeProduct, ItemTypeCoupon, ItemTypePartner:
		return true
	default:
		return false
	}
}

// Product is an affiliate product promoted by a creator.
type Product struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	AffiliateURL string    `json:"affiliate_url"`
	ImageURL     *string   `json:"image_url"`
	Price        *string   `json:"price"` // Free text, e.g. "R$ 99,90".
	Active       bool      `json:"active"`
	Clicks       int64     `json:"clicks"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Coupon is a discount code a creator shares for a store.
type Coupon struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	StoreName string    `json:"store_name"`
	Code      string    `json:"code"`
	Discount  string    `json:"discount"`
	Link      *string   `json:"link"`
	Active    bool      `json:"active"`
	Clicks    int64     `json:"clicks"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Partner is a brand a creator works with.
type Partner struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	SiteURL   string    `json:"site_url"`
	LogoURL   *string   `json:"logo_url"`
	Active    bool      `json:"active"`
	Clicks    int64     `json:"clicks"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemPosition assigns a new position to one item during a reorder.
type ItemPosition struct {
	ID       uuid.UUID `json:"id"`
	Position int       `json:"position"`
}

// ItemRef identifies an item of any type together with its owner.
type ItemRef struct {
	ID     uuid.UUID `json:"id"`
	Type   ItemType  `json:"type"`
	UserID string    `json:"user_id"`
}

// NullIfEmpty converts an empty string into nil so optional fields persist as NULL.
func NullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
