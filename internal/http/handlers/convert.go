package handlers

import (
	"fmt"

	"dronefleet-service/internal/domain"
)

func droneToResponse(d domain.Drone) droneDTO {
	return droneDTO{
		DroneID:         d.ID,
		Model:           d.Model,
		MaxLoadKg:       d.MaxLoadKg,
		BatteryCapacity: d.BatteryCapacity,
		Status:          string(d.Status),
		Battery:         d.Battery,
	}
}

func dronesToResponse(list []domain.Drone) []droneDTO {
	out := make([]droneDTO, 0, len(list))
	for _, d := range list {
		out = append(out, droneToResponse(d))
	}
	return out
}

func operatorToResponse(o domain.Operator) operatorDTO {
	return operatorDTO{
		ID:              o.ID,
		FirstName:       o.FirstName,
		LastName:        o.LastName,
		FullName:        o.FullName,
		CertificationID: o.CertificationID,
		ContactNumber:   o.ContactNumber,
	}
}

func operatorsToResponse(list []domain.Operator) []operatorDTO {
	out := make([]operatorDTO, 0, len(list))
	for _, o := range list {
		out = append(out, operatorToResponse(o))
	}
	return out
}

func (req updateOperatorRequest) toModel(id int64) domain.PartialOperatorUpdate {
	return domain.PartialOperatorUpdate{
		ID:              id,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		CertificationID: req.CertificationID,
		ContactNumber:   req.ContactNumber,
	}
}

// formatEndpoint renders one side of a package route. A missing address
// row falls back to the bare id reference.
func formatEndpoint(a *domain.Address, id int64) string {
	if a == nil {
		return fmt.Sprintf("Address #%d", id)
	}
	return a.Format()
}

func packageToResponse(p domain.Package, status string) packageDTO {
	return packageDTO{
		ID:         p.Ref().String(),
		Priority:   string(p.Priority),
		Dimensions: p.Dims.String(),
		Weight:     domain.FormatWeight(p.WeightKg),
		Sender:     formatEndpoint(p.Sender, p.SenderAddressID),
		Receiver:   formatEndpoint(p.Receiver, p.ReceiverAddressID),
		DeliveryID: deliveryIDPlaceholder,
		Status:     status,
	}
}

func packagesToResponse(list []domain.Package) []packageDTO {
	out := make([]packageDTO, 0, len(list))
	for _, p := range list {
		out = append(out, packageToResponse(p, packageStatusPending))
	}
	return out
}

func (req updatePackageRequest) toModel(id int64) domain.PartialPackageUpdate {
	u := domain.PartialPackageUpdate{
		ID:                id,
		Length:            req.Length,
		Width:             req.Width,
		Height:            req.Height,
		WeightKg:          req.WeightKg,
		SenderAddressID:   req.SenderAddressID,
		ReceiverAddressID: req.ReceiverAddressID,
	}
	if req.PriorityLevel != nil {
		p := domain.Priority(*req.PriorityLevel)
		u.Priority = &p
	}
	return u
}

func deliveryToResponse(d domain.Delivery) deliveryDTO {
	return deliveryDTO{
		DeliveryID:     d.ID,
		DroneID:        d.DroneID,
		OperatorID:     d.OperatorID,
		StartTime:      d.StartTime,
		EndTime:        d.EndTime,
		DeliveryStatus: string(d.Status),
	}
}

func deliveriesToResponse(list []domain.Delivery) []deliveryDTO {
	out := make([]deliveryDTO, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d))
	}
	return out
}

func addressToResponse(a domain.Address) addressDTO {
	return addressDTO{ID: a.ID, Street: a.Street, City: a.City, Zip: a.Zip}
}

func addressesToResponse(list []domain.Address) []addressDTO {
	out := make([]addressDTO, 0, len(list))
	for _, a := range list {
		out = append(out, addressToResponse(a))
	}
	return out
}
