package payment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment ID resolves to nothing.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrDoctorNotFound is returned when the appointment's doctor no longer exists.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrAlreadyPaid is returned when an order is requested for a settled appointment.
	ErrAlreadyPaid = errors.New("appointment is already paid")
	// ErrMissingFields is returned when a verification request is incomplete.
	ErrMissingFields = errors.New("order ID, payment ID and signature are required")
	// ErrInvalidSignature is returned when the gateway signature does not match.
	ErrInvalidSignature = errors.New("invalid payment signature")
	// ErrOrderMismatch is returned when the verified order does not belong to the appointment.
	ErrOrderMismatch = errors.New("order does not match appointment")
)
