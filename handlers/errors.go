package handlers

import (
	"errors"
	"net/http"

	"medicore/services/appointment"
	"medicore/services/doctor"
	"medicore/services/patient"
	"medicore/services/payment"
	"medicore/services/scheduling"
	"medicore/services/staff"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP responses. Validation and
// scheduling failures carry caller-facing messages; anything unrecognized is
// an internal error and is logged rather than leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case isBadRequest(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case isNotFound(err):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, appointment.ErrAccessDenied),
		errors.Is(err, doctor.ErrAccessDenied),
		errors.Is(err, patient.ErrAccessDenied),
		errors.Is(err, staff.ErrAccessDenied):
		utils.JSONError(c, http.StatusForbidden, "Access denied", "")
	case errors.Is(err, doctor.ErrInvalidCredentials), errors.Is(err, staff.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
	case errors.Is(err, doctor.ErrDuplicateEmail), errors.Is(err, staff.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server Error", "")
	}
}

func isBadRequest(err error) bool {
	var (
		malformedTime   *scheduling.MalformedTimeError
		unavailable     *scheduling.DoctorUnavailableError
		noAvailability  *scheduling.NoAvailabilityConfiguredError
		invalidSlot     *scheduling.InvalidSlotError
		slotTaken       *scheduling.SlotTakenError
		slotsExhausted  *scheduling.SlotsExhaustedError
		invalidDoctorID *appointment.InvalidDoctorIDError
		missingDate     *appointment.MissingDateError
		invalidDate     *appointment.InvalidDateError
		pastDate        *appointment.PastDateError
		missingPatient  *appointment.MissingPatientError
		ambiguous       *appointment.AmbiguousPatientError
		incomplete      *appointment.IncompletePatientDetailsError
		invalidStatus   *appointment.InvalidStatusError
	)
	switch {
	case errors.As(err, &malformedTime),
		errors.As(err, &unavailable),
		errors.As(err, &noAvailability),
		errors.As(err, &invalidSlot),
		errors.As(err, &slotTaken),
		errors.As(err, &slotsExhausted),
		errors.As(err, &invalidDoctorID),
		errors.As(err, &missingDate),
		errors.As(err, &invalidDate),
		errors.As(err, &pastDate),
		errors.As(err, &missingPatient),
		errors.As(err, &ambiguous),
		errors.As(err, &incomplete),
		errors.As(err, &invalidStatus):
		return true
	case errors.Is(err, doctor.ErrMissingFields),
		errors.Is(err, doctor.ErrInvalidFee),
		errors.Is(err, patient.ErrMissingFields),
		errors.Is(err, staff.ErrMissingFields),
		errors.Is(err, staff.ErrInvalidRole),
		errors.Is(err, payment.ErrMissingFields),
		errors.Is(err, payment.ErrInvalidSignature),
		errors.Is(err, payment.ErrOrderMismatch),
		errors.Is(err, payment.ErrAlreadyPaid):
		return true
	}
	return false
}

func isNotFound(err error) bool {
	var (
		patientNotFound *appointment.PatientNotFoundError
		doctorNotFound  *appointment.DoctorNotFoundError
		apptNotFound    *appointment.AppointmentNotFoundError
	)
	switch {
	case errors.As(err, &patientNotFound),
		errors.As(err, &doctorNotFound),
		errors.As(err, &apptNotFound):
		return true
	case errors.Is(err, doctor.ErrNotFound),
		errors.Is(err, patient.ErrNotFound),
		errors.Is(err, staff.ErrNotFound),
		errors.Is(err, payment.ErrAppointmentNotFound),
		errors.Is(err, payment.ErrDoctorNotFound):
		return true
	}
	return false
}
