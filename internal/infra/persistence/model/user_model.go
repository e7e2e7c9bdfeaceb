package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The primary key is the identity provider subject.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID         string  `gorm:"type:varchar(191);primaryKey"`
	Username   string  `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email      string  `gorm:"type:varchar(255);not null"`
	Name       string  `gorm:"type:varchar(100);not null"`
	Bio        string  `gorm:"type:text;not null;default:''"`
	AvatarURL  *string `gorm:"type:text"`
	ThemeColor string  `gorm:"type:varchar(7);not null;default:'#000000'"`
	Theme      string  `gorm:"type:varchar(32);not null;default:'light'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	SocialLinks  []SocialLinkModel      `gorm:"foreignKey:UserID"`
	Subscription *UserSubscriptionModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SocialLinkModel mirrors the 'social_links' table, one row per (user, network).
type SocialLinkModel struct {
	UserID    string `gorm:"type:varchar(191);primaryKey"`
	Network   string `gorm:"type:varchar(32);primaryKey"`
	URL       string `gorm:"type:text;not null;default:''"`
	Visible   bool   `gorm:"not null;default:false"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialLinkModel) TableName() string {
	return "social_links"
}

// UserOverviewRow is the scan target of the admin listing query.
type UserOverviewRow struct {
	UserModel
	ProductCount int64
	CouponCount  int64
	PartnerCount int64
}
