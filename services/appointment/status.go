package appointment

import (
	"context"

	"medicore/models"
	"medicore/utils"

	"go.uber.org/zap"
)

// UpdateStatus moves an appointment to any member of the status set. The
// operation validates set membership only; every transition is legal and no
// status is terminal.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error) {
	if !models.IsValidStatus(status) {
		return nil, &InvalidStatusError{Status: status}
	}

	updated, err := s.Appointments.UpdateStatus(ctx, appointmentID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &AppointmentNotFoundError{ID: appointmentID}
	}

	utils.GetLogger().Info("appointment status updated",
		zap.String("appointmentID", appointmentID),
		zap.String("status", status),
	)
	return updated, nil
}

// GetByID returns an appointment with its doctor and patient resolved.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, appointmentID string) (*Detail, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, &AppointmentNotFoundError{ID: appointmentID}
	}

	doctor, err := s.Doctors.GetByID(appt.DoctorID)
	if err != nil {
		return nil, err
	}
	patient, err := s.Patients.GetByID(appt.PatientID)
	if err != nil {
		return nil, err
	}

	return &Detail{Appointment: *appt, Doctor: doctor, Patient: patient}, nil
}
