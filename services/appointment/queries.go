package appointment

import (
	"context"

	"medicore/models"

	"github.com/google/uuid"
)

// MyAppointments lists the acting doctor's appointments sorted by date and
// time. Only doctors may call this.
func (s *DefaultAppointmentService) MyAppointments(ctx context.Context, actor models.Actor) ([]models.AppointmentSummary, error) {
	if actor.Role != models.RoleDoctor {
		return nil, ErrAccessDenied
	}

	appts, err := s.Appointments.GetByDoctor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.AppointmentSummary, 0, len(appts))
	for _, a := range appts {
		status := a.Status
		if status == "" {
			status = models.StatusBooked
		}
		summaries = append(summaries, models.AppointmentSummary{
			ID:          a.ID,
			Date:        a.Date,
			Time:        a.Time,
			Status:      status,
			PatientName: a.PatientName,
		})
	}
	return summaries, nil
}

// GroupedByDoctor lists every doctor's appointments for the reception view.
func (s *DefaultAppointmentService) GroupedByDoctor(ctx context.Context) ([]models.DoctorAppointments, error) {
	return s.Appointments.GroupedByDoctor(ctx)
}

// ByDoctor lists one doctor's appointments sorted by date and time.
func (s *DefaultAppointmentService) ByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	if _, err := uuid.Parse(doctorID); err != nil {
		return nil, &InvalidDoctorIDError{ID: doctorID}
	}
	return s.Appointments.GetByDoctor(ctx, doctorID)
}
