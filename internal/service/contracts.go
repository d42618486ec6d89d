//go:generate mockgen -source=contracts.go -destination=service_mocks_test.go -package=service

package service

import (
	"context"

	"dronefleet-service/internal/domain"
)

type droneRepository interface {
	List(ctx context.Context) ([]domain.Drone, error)
	Create(ctx context.Context, d *domain.Drone) (*domain.Drone, error)
	UpdateStatusBattery(ctx context.Context, id int64, status domain.DroneStatus, battery float64) (*domain.Drone, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type operatorRepository interface {
	List(ctx context.Context) ([]domain.Operator, error)
	Create(ctx context.Context, o *domain.Operator) (*domain.Operator, error)
	UpdatePartial(ctx context.Context, u domain.PartialOperatorUpdate) (*domain.Operator, error)
	Delete(ctx context.Context, id int64) (*domain.Operator, error)
}

type packageRepository interface {
	List(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, p *domain.Package) (*domain.Package, error)
	UpdatePartial(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error)
	Delete(ctx context.Context, id int64) (*domain.Package, error)
}

type deliveryRepository interface {
	List(ctx context.Context, status *domain.DeliveryStatus) ([]domain.Delivery, error)
	Create(ctx context.Context, d *domain.Delivery) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type addressRepository interface {
	List(ctx context.Context) ([]domain.Address, error)
}
