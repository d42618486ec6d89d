package service

import (
	"context"
	"strings"
	"time"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
)

// OperatorService coordinates operator business logic.
type OperatorService struct {
	repo             operatorRepository
	operationTimeout time.Duration
}

// NewOperatorService creates and configures an OperatorService.
func NewOperatorService(r operatorRepository, timeout time.Duration) *OperatorService {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &OperatorService{repo: r, operationTimeout: timeout}
}

func (s *OperatorService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// All four fields are required. Certification ids are not checked for
// uniqueness.
func validateOperatorCreate(o *domain.Operator) error {
	if o == nil {
		return apperr.ErrInvalid
	}
	for _, f := range []string{o.FirstName, o.LastName, o.CertificationID, o.ContactNumber} {
		if strings.TrimSpace(f) == "" {
			return apperr.ErrInvalid
		}
	}
	return nil
}

func validateOperatorUpdate(u *domain.PartialOperatorUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	for _, f := range []*string{u.FirstName, u.LastName, u.CertificationID, u.ContactNumber} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return apperr.ErrInvalid
		}
	}
	return nil
}

// List returns all operators with the derived full name.
func (s *OperatorService) List(ctx context.Context) ([]domain.Operator, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx)
}

// Create persists a new operator and returns the stored row.
func (s *OperatorService) Create(ctx context.Context, o *domain.Operator) (*domain.Operator, error) {
	if err := validateOperatorCreate(o); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, o)
}

// UpdatePartial applies a partial update to an operator. An update that
// supplies zero fields is a no-op and, like a missing id, surfaces as
// not found to the caller.
func (s *OperatorService) UpdatePartial(ctx context.Context, u domain.PartialOperatorUpdate) (*domain.Operator, error) {
	if err := validateOperatorUpdate(&u); err != nil {
		return nil, err
	}
	if u.Empty() {
		return nil, apperr.ErrNotFound
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}

// Delete removes an operator and returns the deleted row. Deliveries that
// reference the operator keep their now-dangling operator id.
func (s *OperatorService) Delete(ctx context.Context, id int64) (*domain.Operator, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.ErrNotFound
	}
	return o, nil
}
