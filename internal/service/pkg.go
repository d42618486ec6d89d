package service

import (
	"context"
	"time"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
)

// PackageService coordinates package business logic.
type PackageService struct {
	repo             packageRepository
	operationTimeout time.Duration
}

// NewPackageService creates and configures a PackageService.
func NewPackageService(r packageRepository, timeout time.Duration) *PackageService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &PackageService{repo: r, operationTimeout: timeout}
}

func (s *PackageService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validatePackageCreate(p *domain.Package) error {
	if p == nil {
		return apperr.ErrInvalid
	}
	if !p.Priority.Valid() {
		return apperr.ErrInvalid
	}
	if p.SenderAddressID <= 0 || p.ReceiverAddressID <= 0 {
		return apperr.ErrInvalid
	}
	return nil
}

func validatePackageUpdate(u *domain.PartialPackageUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return apperr.ErrInvalid
	}
	if u.SenderAddressID != nil && *u.SenderAddressID <= 0 {
		return apperr.ErrInvalid
	}
	if u.ReceiverAddressID != nil && *u.ReceiverAddressID <= 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// List returns all packages with their joined addresses.
func (s *PackageService) List(ctx context.Context) ([]domain.Package, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Create persists a new package and returns the stored row in the
// canonical joined shape.
func (s *PackageService) Create(ctx context.Context, p *domain.Package) (*domain.Package, error) {
	if err := validatePackageCreate(p); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, p)
}

// UpdatePartial applies a partial update to a package. Fields not
// supplied keep their stored values.
func (s *PackageService) UpdatePartial(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error) {
	if err := validatePackageUpdate(&u); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}

// Delete removes a package and returns the row as it was stored.
func (s *PackageService) Delete(ctx context.Context, id int64) (*domain.Package, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}
