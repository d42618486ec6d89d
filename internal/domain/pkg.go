package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Priority represents a package priority level.
type Priority string

// List of possible package priorities
const (
	PriorityStandard Priority = "Standard"
	PriorityExpress  Priority = "Express"
)

var allowedPriorities = [...]Priority{PriorityStandard, PriorityExpress}

// Valid checks if the Priority is valid
func (p Priority) Valid() bool {
	for _, v := range allowedPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// PackageRef is the display identifier of a package (PKG-001 for id 1).
type PackageRef int64

var rePackageRef = regexp.MustCompile(`^PKG-(\d+)$`)

// ParsePackageRef parses a display id back into a PackageRef.
// Anything that is not exactly "PKG-<digits>" is rejected.
func ParsePackageRef(s string) (PackageRef, error) {
	m := rePackageRef.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("malformed package id %q", s)
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("malformed package id %q", s)
	}
	return PackageRef(id), nil
}

// String formats the ref as a zero-padded display id.
func (r PackageRef) String() string {
	return fmt.Sprintf("PKG-%03d", int64(r))
}

// Int64 returns the underlying numeric key.
func (r PackageRef) Int64() int64 { return int64(r) }

// Dimensions is a package size in centimeters.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

var reDimensions = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)\s*(?:cm)?\s*$`)

// ParseDimensions parses "LxWxH" with an optional "cm" suffix.
// Whitespace around components is ignored; matching is case-insensitive.
func ParseDimensions(s string) (Dimensions, error) {
	m := reDimensions.FindStringSubmatch(s)
	if m == nil {
		return Dimensions{}, fmt.Errorf("dimensions must be in format LxWxH")
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return Dimensions{}, fmt.Errorf("dimensions must be in format LxWxH")
		}
		out[i] = v
	}
	return Dimensions{Length: out[0], Width: out[1], Height: out[2]}, nil
}

// String renders dimensions in the wire format, e.g. "30x20x15 cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%sx%sx%s cm", formatNum(d.Length), formatNum(d.Width), formatNum(d.Height))
}

var reWeight = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*(?:kg)?\s*$`)

// ParseWeight parses "<number>" with an optional "kg" suffix.
func ParseWeight(s string) (float64, error) {
	m := reWeight.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed weight %q", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed weight %q", s)
	}
	return v, nil
}

// FormatWeight renders a weight in the wire format, e.g. "2.5 kg".
func FormatWeight(kg float64) string {
	return formatNum(kg) + " kg"
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Package represents a shipment.
// Sender and Receiver are populated from the address join on read paths;
// nil means the referenced address row is gone (dangling foreign key).
type Package struct {
	ID                int64
	Priority          Priority
	Dims              Dimensions
	WeightKg          float64
	SenderAddressID   int64
	ReceiverAddressID int64
	Sender            *Address
	Receiver          *Address
}

// Ref returns the display identifier of the package.
func (p Package) Ref() PackageRef { return PackageRef(p.ID) }

// PartialPackageUpdate carries optional fields to update a package.
// A nil field means "do not change" that attribute.
type PartialPackageUpdate struct {
	ID                int64
	Priority          *Priority
	Length            *float64
	Width             *float64
	Height            *float64
	WeightKg          *float64
	SenderAddressID   *int64
	ReceiverAddressID *int64
}

// Empty reports whether the update supplies no fields at all.
func (u PartialPackageUpdate) Empty() bool {
	return u.Priority == nil && u.Length == nil && u.Width == nil && u.Height == nil &&
		u.WeightKg == nil && u.SenderAddressID == nil && u.ReceiverAddressID == nil
}
