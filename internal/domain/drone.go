package domain

// DroneStatus represents the operational status of a drone.
type DroneStatus string

// List of possible drone statuses
const (
	DroneAvailable   DroneStatus = "Available"
	DroneInTransit   DroneStatus = "In-Transit"
	DroneCharging    DroneStatus = "Charging"
	DroneMaintenance DroneStatus = "Maintenance"
	DroneLowBattery  DroneStatus = "Low Battery"
)

var allowedDroneStatuses = [...]DroneStatus{
	DroneAvailable, DroneInTransit, DroneCharging, DroneMaintenance, DroneLowBattery,
}

// Valid checks if the DroneStatus is valid
func (s DroneStatus) Valid() bool {
	for _, v := range allowedDroneStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Drone represents a fleet drone.
// Battery is a percentage; battery <= 30 is a display-side "low" hint only,
// nothing here enforces it.
type Drone struct {
	ID              int64
	Model           string
	MaxLoadKg       float64
	BatteryCapacity float64
	Status          DroneStatus
	Battery         float64
}
