package doctor

import "errors"

var (
	// ErrAccessDenied is returned when the actor's role does not permit the operation.
	ErrAccessDenied = errors.New("access denied")
	// ErrMissingFields is returned when required registration fields are absent.
	ErrMissingFields = errors.New("all fields are required")
	// ErrDuplicateEmail is returned when a doctor with the email already exists.
	ErrDuplicateEmail = errors.New("doctor already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when a doctor ID resolves to nothing.
	ErrNotFound = errors.New("doctor not found")
	// ErrInvalidFee is returned for a missing, non-numeric, or non-positive fee.
	ErrInvalidFee = errors.New("invalid fee value")
)
