package domain

import "fmt"

// Address represents a postal address referenced by packages.
// The API surface is read-only; rows are seeded out of band.
type Address struct {
	ID     int64
	Street string
	City   string
	Zip    string
}

// Format renders the address the way package listings display it.
func (a Address) Format() string {
	return fmt.Sprintf("%s, %s %s", a.Street, a.City, a.Zip)
}
