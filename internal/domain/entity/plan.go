package entity

// PlanLimits holds the free-plan quotas. Zero or negative means unlimited.
type PlanLimits struct {
	Products    int `json:"products"`
	Coupons     int `json:"coupons"`
	Partners    int `json:"partners"`
	SocialLinks int `json:"social_links"`
}

// DefaultFreeLimits are the quotas of the free plan.
var DefaultFreeLimits = PlanLimits{
	Products:    3,
	Coupons:     1,
	Partners:    1,
	SocialLinks: 2,
}

// ForItem returns the quota for the given item type.
func (l PlanLimits) ForItem(itemType ItemType) int {
	switch itemType {
	case ItemTypeProduct:
		return l.Products
	case ItemTypeCoupon:
		return l.Coupons
	case ItemTypePartner:
		return l.Partners
	default:
		return 0
	}
}

// Allows reports whether one more element fits under limit given the current count.
func Allows(limit int, current int64) bool {
	return limit <= 0 || current < int64(limit)
}
