package service

import (
	"context"
	"time"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
)

// DeliveryService coordinates delivery business logic.
type DeliveryService struct {
	repo             deliveryRepository
	operationTimeout time.Duration
}

// NewDeliveryService creates and configures a DeliveryService.
func NewDeliveryService(r deliveryRepository, timeout time.Duration) *DeliveryService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &DeliveryService{repo: r, operationTimeout: timeout}
}

func (s *DeliveryService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Drone id, operator id and start time are mandatory. Neither id is
// checked against its table; dangling references are expected after
// drone or operator deletion.
func validateDeliveryCreate(d *domain.Delivery) error {
	if d == nil {
		return apperr.ErrInvalid
	}
	if d.DroneID <= 0 || d.OperatorID <= 0 {
		return apperr.ErrInvalid
	}
	if d.StartTime.IsZero() {
		return apperr.ErrInvalid
	}
	if d.Status == "" {
		d.Status = domain.DeliveryScheduled
	}
	if !d.Status.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// List returns deliveries, optionally restricted to one status.
func (s *DeliveryService) List(ctx context.Context, status *domain.DeliveryStatus) ([]domain.Delivery, error) {
	if status != nil && !status.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, status)
}

// Create persists a new delivery and returns the stored row.
func (s *DeliveryService) Create(ctx context.Context, d *domain.Delivery) (*domain.Delivery, error) {
	if err := validateDeliveryCreate(d); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, d)
}

// UpdateStatus updates exactly the status field of a delivery.
func (s *DeliveryService) UpdateStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error) {
	if id <= 0 || !status.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// Delete removes a delivery and its join-table rows. The join rows are
// cleared even when the delivery does not exist; a missing delivery is
// still reported as not found.
func (s *DeliveryService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
