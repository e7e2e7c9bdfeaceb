package service

import "time"

// Metrics records business counters.
type Metrics interface {
	// ClickTracked counts one recorded click of the given item type.
	ClickTracked(itemType string)

	// QuotaRejected counts a creation refused by the free plan limits.
	QuotaRejected(resource string)

	// ClickEventDelivered observes a click event reaching a consumer, lag after the click.
	ClickEventDelivered(itemType string, lag time.Duration)
}
