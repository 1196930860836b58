package appointment

import (
	"errors"
	"fmt"
)

// ErrAccessDenied is returned when the acting caller's role does not permit
// the operation.
var ErrAccessDenied = errors.New("access denied")

// InvalidDoctorIDError reports a missing or malformed doctor identifier.
type InvalidDoctorIDError struct {
	ID string
}

func (e *InvalidDoctorIDError) Error() string {
	return "Invalid doctor ID"
}

// MissingDateError reports a booking request without a date.
type MissingDateError struct{}

func (e *MissingDateError) Error() string {
	return "Appointment date is required"
}

// InvalidDateError reports a date that is not of the form YYYY-MM-DD.
type InvalidDateError struct {
	Date string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid appointment date %q", e.Date)
}

// PastDateError reports a booking attempt for a date before today.
type PastDateError struct {
	Date string
}

func (e *PastDateError) Error() string {
	return "Cannot book an appointment for a past date"
}

// MissingPatientError reports a booking with neither a patient reference nor
// inline patient details.
type MissingPatientError struct{}

func (e *MissingPatientError) Error() string {
	return "Patient details are required"
}

// AmbiguousPatientError reports a booking that supplied both a patient
// reference and inline details.
type AmbiguousPatientError struct{}

func (e *AmbiguousPatientError) Error() string {
	return "Provide either a patient ID or inline patient details, not both"
}

// IncompletePatientDetailsError reports inline patient details with one or
// more required fields missing.
type IncompletePatientDetailsError struct{}

func (e *IncompletePatientDetailsError) Error() string {
	return "Incomplete patient details"
}

// PatientNotFoundError reports a patient reference that resolves to nothing.
type PatientNotFoundError struct {
	ID string
}

func (e *PatientNotFoundError) Error() string {
	return "Patient not found"
}

// DoctorNotFoundError reports a doctor ID that resolves to nothing.
type DoctorNotFoundError struct {
	ID string
}

func (e *DoctorNotFoundError) Error() string {
	return "Doctor not found"
}

// AppointmentNotFoundError reports an appointment ID that resolves to nothing.
type AppointmentNotFoundError struct {
	ID string
}

func (e *AppointmentNotFoundError) Error() string {
	return "Appointment not found"
}

// InvalidStatusError reports a status value outside the enumerated set.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return "Invalid status"
}
