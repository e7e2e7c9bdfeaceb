// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"
)

// Username length bounds. The maximum matches the users.username column.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 64
)

// reservedUsernames are top-level paths served by the application itself.
var reservedUsernames = map[string]struct{}{
	"admin":   {},
	"api":     {},
	"health":  {},
	"metrics": {},
	"uploads": {},
}

var usernamePattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

// User is the creator account. Its ID is the subject issued by the identity provider.
type User struct {
	ID         string    `json:"id"`          // Identity provider subject.
	Username   string    `json:"username"`    // Unique public slug, immutable once claimed.
	Email      string    `json:"email"`       // Contact email taken from the identity provider.
	Name       string    `json:"name"`        // Display name shown on the public page.
	Bio        string    `json:"bio"`         // Free-text biography.
	AvatarURL  *string   `json:"avatar_url"`  // Public avatar image, nil when unset.
	ThemeColor string    `json:"theme_color"` // Accent color in hex notation.
	Theme      ThemeKey  `json:"theme"`       // Selected visual preset.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DefaultThemeColor is assigned to newly onboarded users.
const DefaultThemeColor = "#000000"

// IsValidUsername reports whether the given slug satisfies the username rules.
func IsValidUsername(username string) bool {
	return len(username) >= UsernameMinLength &&
		len(username) <= UsernameMaxLength &&
		usernamePattern.MatchString(username)
}

// IsReservedUsername reports whether the slug collides with an application route.
func IsReservedUsername(username string) bool {
	_, ok := reservedUsernames[username]

	return ok
}

// UserOverview is a read model for the super-admin user listing.
type UserOverview struct {
	User         *User `json:"user"`
	ProductCount int64 `json:"product_count"`
	CouponCount  int64 `json:"coupon_count"`
	PartnerCount int64 `json:"partner_count"`
	IsPro        bool  `json:"is_pro"`
}
