package service

import (
	"context"
	"strings"
	"time"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
)

// DroneService coordinates drone fleet business logic.
type DroneService struct {
	repo             droneRepository
	operationTimeout time.Duration
}

// NewDroneService creates and configures a DroneService.
func NewDroneService(r droneRepository, timeout time.Duration) *DroneService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &DroneService{repo: r, operationTimeout: timeout}
}

func (s *DroneService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateDroneCreate checks the required fields only. Battery ranges and
// load limits are deliberately not enforced; battery <= 30 is a display
// hint on the client side.
func validateDroneCreate(d *domain.Drone) error {
	if d == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(d.Model) == "" {
		return apperr.ErrInvalid
	}
	if !d.Status.Valid() {
		return apperr.ErrInvalid
	}
	return nil
}

// List returns all drones ordered by id.
func (s *DroneService) List(ctx context.Context) ([]domain.Drone, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Create persists a new drone and returns the stored row.
func (s *DroneService) Create(ctx context.Context, d *domain.Drone) (*domain.Drone, error) {
	if err := validateDroneCreate(d); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, d)
}

// UpdateStatusBattery updates exactly the status and battery fields of a drone.
func (s *DroneService) UpdateStatusBattery(ctx context.Context, id int64, status domain.DroneStatus, battery float64) (*domain.Drone, error) {
	if id <= 0 || !status.Valid() {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	d, err := s.repo.UpdateStatusBattery(ctx, id, status, battery)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// Delete removes a drone. Deleting an absent drone is reported as not found.
func (s *DroneService) Delete(ctx context.Context, id int64) error {
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
