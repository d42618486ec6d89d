package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Wire field names follow the dashboard contract: flat lowercase keys,
// display ids and composite strings on the package resource.

type droneDTO struct {
	DroneID         int64   `json:"droneid"`
	Model           string  `json:"model"`
	MaxLoadKg       float64 `json:"maxloadkg"`
	BatteryCapacity float64 `json:"batterycapacity"`
	Status          string  `json:"status"`
	Battery         float64 `json:"battery"`
}

// Pointer fields distinguish "absent" from zero values; all five are
// required.
type createDroneRequest struct {
	Model           string   `json:"model"`
	MaxLoadKg       *float64 `json:"maxloadkg"`
	BatteryCapacity *float64 `json:"batterycapacity"`
	Status          string   `json:"status"`
	Battery         *float64 `json:"battery"`
}

type updateDroneRequest struct {
	Status  string   `json:"status"`
	Battery *float64 `json:"battery"`
}

type operatorDTO struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	FullName        string `json:"fullname"`
	CertificationID string `json:"certificationid"`
	ContactNumber   string `json:"contactnumber"`
}

type createOperatorRequest struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	CertificationID string `json:"certificationid"`
	ContactNumber   string `json:"contactnumber"`
}

type updateOperatorRequest struct {
	FirstName       *string `json:"firstname,omitempty"`
	LastName        *string `json:"lastname,omitempty"`
	CertificationID *string `json:"certificationid,omitempty"`
	ContactNumber   *string `json:"contactnumber,omitempty"`
}

// deliveryIDPlaceholder fills the deliveryId field on package responses;
// the package table carries no delivery linkage on this path.
const deliveryIDPlaceholder = "DEL-2024-XXX"

type packageDTO struct {
	ID         string `json:"id"`
	Priority   string `json:"priority"`
	Dimensions string `json:"dimensions"`
	Weight     string `json:"weight"`
	Sender     string `json:"sender"`
	Receiver   string `json:"receiver"`
	DeliveryID string `json:"deliveryId"`
	Status     string `json:"status"`
}

type createPackageRequest struct {
	Priority          string    `json:"priority"`
	Dimensions        string    `json:"dimensions"`
	Weight            flexFloat `json:"weight"`
	SenderAddressID   int64     `json:"senderAddressId"`
	ReceiverAddressID int64     `json:"receiverAddressId"`
}

// Update bodies use raw column names, unlike create.
type updatePackageRequest struct {
	PriorityLevel     *string  `json:"prioritylevel,omitempty"`
	Length            *float64 `json:"length,omitempty"`
	Width             *float64 `json:"width,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	WeightKg          *float64 `json:"weightkg,omitempty"`
	SenderAddressID   *int64   `json:"senderaddressid,omitempty"`
	ReceiverAddressID *int64   `json:"receiveraddressid,omitempty"`
}

type deliveryDTO struct {
	DeliveryID     int64      `json:"deliveryid"`
	DroneID        int64      `json:"droneid"`
	OperatorID     int64      `json:"operatorid"`
	StartTime      time.Time  `json:"starttime"`
	EndTime        *time.Time `json:"endtime"`
	DeliveryStatus string     `json:"deliverystatus"`
}

type createDeliveryRequest struct {
	DroneID        int64      `json:"droneid"`
	OperatorID     int64      `json:"operatorid"`
	StartTime      *time.Time `json:"starttime"`
	EndTime        *time.Time `json:"endtime,omitempty"`
	DeliveryStatus string     `json:"deliverystatus,omitempty"`
}

type updateDeliveryRequest struct {
	Status string `json:"status"`
}

type addressDTO struct {
	ID     int64  `json:"id"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// flexFloat accepts either a JSON number or a string such as "2.5 kg".
// Parsing of the unit suffix is left to the caller; this only strips
// quoting. The dashboard sends weights as strings, scripted clients as
// numbers.
type flexFloat struct {
	raw string
	set bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.raw = s
		f.set = true
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("weight must be a number or string")
	}
	f.raw = strconv.FormatFloat(n, 'f', -1, 64)
	f.set = true
	return nil
}

func (f flexFloat) Empty() bool {
	return !f.set || strings.TrimSpace(f.raw) == ""
}
