package pubsub

import "places/internal/domain/service"

// Message attribute keys shared by every publisher.
const (
	attrEventType = "event_type"
	attrPlaceID   = "place_id"
	attrOwnerID   = "owner_id"
	attrOwnerType = "owner_type"
	attrRequestID = "request_id"
)

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.PlaceEvent) map[string]string {
	attributes := map[string]string{
		attrEventType: event.Type,
		attrPlaceID:   event.PlaceID,
		attrOwnerID:   event.OwnerID,
		attrOwnerType: event.OwnerType,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}
