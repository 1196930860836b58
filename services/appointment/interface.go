package appointment

import (
	"context"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	patientRepo "medicore/database/repository/patient"
	"medicore/models"
)

// BookingResult is returned on a successful booking.
type BookingResult struct {
	Appointment *models.Appointment `json:"appointment"`
	DoctorName  string              `json:"doctorName"`
}

// Detail is a fully resolved appointment for detail and payment views.
type Detail struct {
	Appointment models.Appointment `json:"appointment"`
	Doctor      *models.Doctor     `json:"doctor,omitempty"`
	Patient     *models.Patient    `json:"patient,omitempty"`
}

// AppointmentService coordinates booking, status updates, and listings.
type AppointmentService interface {
	// Book resolves the patient and doctor, allocates a slot, and persists
	// the appointment.
	Book(ctx context.Context, actor models.Actor, input models.BookAppointmentInput) (*BookingResult, error)
	// UpdateStatus moves an appointment to any member of the status set.
	UpdateStatus(ctx context.Context, appointmentID, status string) (*models.Appointment, error)
	// GetByID returns an appointment with its doctor and patient resolved.
	GetByID(ctx context.Context, appointmentID string) (*Detail, error)
	// MyAppointments lists the acting doctor's appointments.
	MyAppointments(ctx context.Context, actor models.Actor) ([]models.AppointmentSummary, error)
	// GroupedByDoctor lists every doctor's appointments for the reception view.
	GroupedByDoctor(ctx context.Context) ([]models.DoctorAppointments, error)
	// ByDoctor lists one doctor's appointments sorted by date and time.
	ByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Appointments appointmentRepo.AppointmentRepository
	Doctors      doctorRepo.DoctorRepository
	Patients     patientRepo.PatientRepository
}
