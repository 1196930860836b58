package appointment

import (
	"context"
	"time"

	"medicore/models"
	"medicore/services/scheduling"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Book resolves the patient and doctor, delegates slot allocation to the
// scheduler, and persists the appointment. The fee and the patient's display
// name are snapshotted at booking time.
func (s *DefaultAppointmentService) Book(ctx context.Context, actor models.Actor, input models.BookAppointmentInput) (*BookingResult, error) {
	logger := utils.GetLogger()

	if input.DoctorID == "" {
		return nil, &InvalidDoctorIDError{ID: input.DoctorID}
	}
	if _, err := uuid.Parse(input.DoctorID); err != nil {
		return nil, &InvalidDoctorIDError{ID: input.DoctorID}
	}
	if input.Date == "" {
		return nil, &MissingDateError{}
	}
	apptDate, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, &InvalidDateError{Date: input.Date}
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if apptDate.Before(today) {
		return nil, &PastDateError{Date: input.Date}
	}

	patientID, patientName, err := s.resolvePatient(input)
	if err != nil {
		return nil, err
	}

	doctor, err := s.Doctors.GetByID(input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, &DoctorNotFoundError{ID: input.DoctorID}
	}

	existing, err := s.Appointments.GetByDoctorAndDate(ctx, doctor.ID, input.Date)
	if err != nil {
		return nil, err
	}
	taken := make([]string, 0, len(existing))
	for _, appt := range existing {
		taken = append(taken, appt.Time)
	}

	slot, err := scheduling.Allocate(
		scheduling.Availability{Days: doctor.AvailableDays, Windows: doctor.AvailableTime},
		input.Date,
		scheduling.BookedSet(taken),
		input.Time,
	)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:            uuid.New().String(),
		PatientID:     patientID,
		PatientName:   patientName,
		DoctorID:      doctor.ID,
		Date:          input.Date,
		Time:          slot,
		Fee:           doctor.Fee,
		PaymentStatus: models.PaymentPending,
		Status:        models.StatusBooked,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		// A concurrent booking won the slot between the free-slot check and
		// this insert; the unique index reports it as a duplicate key.
		if mongo.IsDuplicateKeyError(err) {
			return nil, &scheduling.SlotTakenError{Time: slot}
		}
		return nil, err
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", doctor.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("bookedBy", actor.ID),
	)

	return &BookingResult{Appointment: appt, DoctorName: doctor.Name}, nil
}

// resolvePatient returns the patient ID and the display-name snapshot for the
// booking. Exactly one input mode must be supplied: an existing patient
// reference or complete inline details.
func (s *DefaultAppointmentService) resolvePatient(input models.BookAppointmentInput) (string, string, error) {
	switch {
	case input.PatientID != "" && input.Patient != nil:
		return "", "", &AmbiguousPatientError{}

	case input.PatientID != "":
		existing, err := s.Patients.GetByID(input.PatientID)
		if err != nil {
			return "", "", err
		}
		if existing == nil {
			return "", "", &PatientNotFoundError{ID: input.PatientID}
		}
		return existing.ID, existing.Name, nil

	case input.Patient != nil:
		p := input.Patient
		if p.Name == "" || p.Age == 0 || p.Gender == "" || p.Phone == "" {
			return "", "", &IncompletePatientDetailsError{}
		}
		created := &models.Patient{
			ID:     uuid.New().String(),
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
			Phone:  p.Phone,
		}
		if err := s.Patients.Create(created); err != nil {
			return "", "", err
		}
		return created.ID, created.Name, nil

	default:
		return "", "", &MissingPatientError{}
	}
}
