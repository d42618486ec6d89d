package service

import (
	"context"
	"time"

	"dronefleet-service/internal/domain"
)

// AddressService exposes the read-only address lookup.
type AddressService struct {
	repo             addressRepository
	operationTimeout time.Duration
}

// NewAddressService creates and configures an AddressService.
func NewAddressService(r addressRepository, timeout time.Duration) *AddressService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &AddressService{repo: r, operationTimeout: timeout}
}

// List returns all addresses ordered by id.
func (s *AddressService) List(ctx context.Context) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	return s.repo.List(ctx)
}
