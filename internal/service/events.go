package service

import (
	"context"
	"errors"
	"time"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/logx"
)

// StatusEvent is a single delivery status change consumed from the bus.
type StatusEvent struct {
	DeliveryID int64     `json:"delivery_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// deliveryStatusPort is the slice of DeliveryService the processor needs.
type deliveryStatusPort interface {
	UpdateStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error)
}

// StatusProcessor applies delivery status events to the store.
type StatusProcessor struct {
	delivery deliveryStatusPort
	logger   logx.Logger
}

// NewStatusProcessor creates a new StatusProcessor.
func NewStatusProcessor(delivery *DeliveryService, logger logx.Logger) *StatusProcessor {
	return NewStatusProcessorWithDeps(delivery, logger)
}

// NewStatusProcessorWithDeps creates a StatusProcessor from interfaces (handy for tests).
func NewStatusProcessorWithDeps(delivery deliveryStatusPort, logger logx.Logger) *StatusProcessor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &StatusProcessor{delivery: delivery, logger: logger}
}

// Handle applies a single event. Events carrying an unknown status or
// referencing a missing delivery are logged and skipped, so the bus does
// not redeliver them forever; any other failure is returned for retry.
func (p *StatusProcessor) Handle(ctx context.Context, e StatusEvent) error {
	status := domain.DeliveryStatus(e.Status)
	if e.DeliveryID <= 0 || !status.Valid() {
		p.logger.Warn("skipping malformed status event",
			logx.Int64("delivery_id", e.DeliveryID),
			logx.String("status", e.Status),
		)
		return nil
	}

	_, err := p.delivery.UpdateStatus(ctx, e.DeliveryID, status)
	switch {
	case err == nil:
		p.logger.Info("delivery status applied",
			logx.Int64("delivery_id", e.DeliveryID),
			logx.String("status", e.Status),
		)
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		p.logger.Warn("status event for unknown delivery",
			logx.Int64("delivery_id", e.DeliveryID),
		)
		return nil
	default:
		return err
	}
}
