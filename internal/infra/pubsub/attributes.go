package pubsub

import "creatorhub/internal/domain/service"

// clickAttributes are the message attributes used for subscription filtering and tracing.
func clickAttributes(event *service.ClickEvent) map[string]string {
	attributes := map[string]string{
		"event_id":  event.EventID,
		"item_type": event.ItemType,
		"user_id":   event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
