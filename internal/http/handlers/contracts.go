package handlers

import (
	"context"

	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/service"
)

type droneUsecase interface {
	List(ctx context.Context) ([]domain.Drone, error)
	Create(ctx context.Context, d *domain.Drone) (*domain.Drone, error)
	UpdateStatusBattery(ctx context.Context, id int64, status domain.DroneStatus, battery float64) (*domain.Drone, error)
	Delete(ctx context.Context, id int64) error
}

// NewDroneUsecase wires a DroneService into a droneUsecase.
func NewDroneUsecase(svc *service.DroneService) droneUsecase { return svc }

type operatorUsecase interface {
	List(ctx context.Context) ([]domain.Operator, error)
	Create(ctx context.Context, o *domain.Operator) (*domain.Operator, error)
	UpdatePartial(ctx context.Context, u domain.PartialOperatorUpdate) (*domain.Operator, error)
	Delete(ctx context.Context, id int64) (*domain.Operator, error)
}

// NewOperatorUsecase wires an OperatorService into an operatorUsecase.
func NewOperatorUsecase(svc *service.OperatorService) operatorUsecase { return svc }

type packageUsecase interface {
	List(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, p *domain.Package) (*domain.Package, error)
	UpdatePartial(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error)
	Delete(ctx context.Context, id int64) (*domain.Package, error)
}

// NewPackageUsecase wires a PackageService into a packageUsecase.
func NewPackageUsecase(svc *service.PackageService) packageUsecase { return svc }

type deliveryUsecase interface {
	List(ctx context.Context, status *domain.DeliveryStatus) ([]domain.Delivery, error)
	Create(ctx context.Context, d *domain.Delivery) (*domain.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Delivery, error)
	Delete(ctx context.Context, id int64) error
}

// NewDeliveryUsecase wires a DeliveryService into a deliveryUsecase.
func NewDeliveryUsecase(svc *service.DeliveryService) deliveryUsecase { return svc }

type addressUsecase interface {
	List(ctx context.Context) ([]domain.Address, error)
}

// NewAddressUsecase wires an AddressService into an addressUsecase.
func NewAddressUsecase(svc *service.AddressService) addressUsecase { return svc }
