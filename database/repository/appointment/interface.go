package appointmentRepo

import (
	"context"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository defines data access for appointment records.
// Appointments are never deleted; status changes are the only mutation
// besides the payment flow.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	SetPaymentOrder(ctx context.Context, id, orderID string, fee float64) error
	MarkPaid(ctx context.Context, id, paymentID string) error
	GroupedByDoctor(ctx context.Context) ([]models.DoctorAppointments, error)
	DistinctPatientIDs(ctx context.Context, doctorID string) ([]string, error)
	CountOnDate(ctx context.Context, date string) (int64, error)
	RecentOnDate(ctx context.Context, date string, limit int64) ([]models.TodayAppointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
