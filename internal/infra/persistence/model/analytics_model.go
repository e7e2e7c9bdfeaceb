package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsLogModel mirrors the append-only 'analytics_logs' table.
type AnalyticsLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(16);not null"`
	UserID    string    `gorm:"type:varchar(191);not null;index:idx_analytics_user_created,priority:1"`
	CreatedAt time.Time `gorm:"not null;index:idx_analytics_user_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsLogModel) TableName() string {
	return "analytics_logs"
}

// ClickCountRow is the scan target of click aggregation queries.
type ClickCountRow struct {
	Type   string
	Clicks int64
}
