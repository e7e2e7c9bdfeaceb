package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsLog is one tracked click on a public item. Logs are append-only.
type AnalyticsLog struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	Type      ItemType  `json:"type"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ClickCount aggregates clicks for one item type.
type ClickCount struct {
	Type   ItemType `json:"type"`
	Clicks int64    `json:"clicks"`
}

// ItemClicks is the lifetime click counter of one item.
type ItemClicks struct {
	ID     uuid.UUID `json:"id"`
	Type   ItemType  `json:"type"`
	Label  string    `json:"label"`
	Clicks int64     `json:"clicks"`
}
