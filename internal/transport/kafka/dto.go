package kafka

import (
	"strings"
	"time"

	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/service"
)

// StatusEventDTO is the wire form of a delivery status event. The
// delivery id arrives as a display reference ("DEL-2024-8") or raw
// digits, matching what the dispatch system publishes.
type StatusEventDTO struct {
	DeliveryID string    `json:"delivery_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts a StatusEventDTO to a service.StatusEvent.
func ToDomain(dto StatusEventDTO) (service.StatusEvent, error) {
	id, err := domain.ParseDeliveryRef(dto.DeliveryID)
	if err != nil {
		return service.StatusEvent{}, err
	}
	return service.StatusEvent{
		DeliveryID: id,
		Status:     strings.TrimSpace(dto.Status),
		OccurredAt: dto.OccurredAt,
	}, nil
}
