package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DeliveryStatus represents the status of a delivery.
type DeliveryStatus string

// List of possible delivery statuses
const (
	DeliveryScheduled  DeliveryStatus = "Scheduled"
	DeliveryInProgress DeliveryStatus = "In-Progress"
	DeliveryCompleted  DeliveryStatus = "Completed"
	DeliveryFailed     DeliveryStatus = "Failed"
)

var allowedDeliveryStatuses = [...]DeliveryStatus{
	DeliveryScheduled, DeliveryInProgress, DeliveryCompleted, DeliveryFailed,
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Delivery represents a delivery run performed by one drone and one operator.
// EndTime is nil while the delivery is open.
type Delivery struct {
	ID         int64
	DroneID    int64
	OperatorID int64
	StartTime  time.Time
	EndTime    *time.Time
	Status     DeliveryStatus
}

var reDeliveryRef = regexp.MustCompile(`^DEL-2024-(\d+)$`)

// ParseDeliveryRef accepts either a raw numeric id or a display-style
// identifier prefixed "DEL-2024-" and returns the numeric key.
func ParseDeliveryRef(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if m := reDeliveryRef.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("malformed delivery id %q", s)
	}
	return id, nil
}
