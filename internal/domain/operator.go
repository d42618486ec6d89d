package domain

// Operator represents a certified drone operator.
// FullName is derived at query time and is never written.
type Operator struct {
	ID              int64
	FirstName       string
	LastName        string
	FullName        string
	CertificationID string
	ContactNumber   string
}

// PartialOperatorUpdate carries optional fields to update an operator.
// A nil field means "do not change" that attribute.
type PartialOperatorUpdate struct {
	ID              int64
	FirstName       *string
	LastName        *string
	CertificationID *string
	ContactNumber   *string
}

// Empty reports whether the update supplies no fields at all.
func (u PartialOperatorUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil &&
		u.CertificationID == nil && u.ContactNumber == nil
}
