package waitlist

import "errors"

var (
	// ErrDuplicateEmail is returned when a join hits the store's email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already on waitlist")

	// ErrEmailNotFound is returned when a lookup or invite targets an email
	// absent from the waitlist.
	ErrEmailNotFound = errors.New("email not found in waitlist")
)
