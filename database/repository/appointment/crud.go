package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new appointment document. A duplicate-key error from the
// unique (doctorId, date, time) index is returned unwrapped so callers can
// detect a concurrent booking of the same slot with mongo.IsDuplicateKeyError.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	appt.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return err
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// GetByDoctorAndDate retrieves every appointment for a doctor on a date,
// regardless of status. Cancelled appointments are included: their time
// stays in the booked set.
func (r *mongoAppointmentRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for doctor %s on %s: %w", doctorID, date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// GetByDoctor retrieves all of a doctor's appointments sorted by date and time.
func (r *mongoAppointmentRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// UpdateStatus sets the lifecycle status and returns the updated document.
// Returns (nil, nil) when the appointment does not exist.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update status of appointment %s: %w", id, err)
	}
	return &updated, nil
}

// SetPaymentOrder records the gateway order ID and re-snapshots the fee.
func (r *mongoAppointmentRepo) SetPaymentOrder(ctx context.Context, id, orderID string, fee float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"razorpayOrderId": orderID, "fee": fee}},
	)
	if err != nil {
		return fmt.Errorf("failed to set payment order on appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MarkPaid flips the payment status to Paid and records the gateway payment ID.
func (r *mongoAppointmentRepo) MarkPaid(ctx context.Context, id, paymentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"paymentStatus": models.PaymentPaid, "razorpayPaymentId": paymentID}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark appointment %s as paid: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
