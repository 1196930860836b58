package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Two concurrent bookings can both pass the free-slot check before
		// either insert commits; this index makes the second insert fail and
		// surface as a slot-taken conflict. Cancelled appointments keep their
		// time, so they participate in the constraint like every other row.
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_doctor_date_time"),
		},
		// Primary query pattern: all appointments for a doctor on a date.
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("doctor_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("date_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
