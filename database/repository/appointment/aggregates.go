package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GroupedByDoctor returns every doctor's appointments grouped under the
// doctor, with patient names joined in. Used by the reception overview.
func (r *mongoAppointmentRepo) GroupedByDoctor(ctx context.Context) ([]models.DoctorAppointments, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$lookup": bson.M{
			"from":         "doctors",
			"localField":   "doctorId",
			"foreignField": "id",
			"as":           "doctor",
		}},
		{"$unwind": "$doctor"},
		{"$lookup": bson.M{
			"from":         "patients",
			"localField":   "patientId",
			"foreignField": "id",
			"as":           "patient",
		}},
		{"$unwind": "$patient"},
		{"$group": bson.M{
			"_id":        "$doctor.id",
			"doctorName": bson.M{"$first": "$doctor.name"},
			"appointments": bson.M{"$push": bson.M{
				"id":          "$id",
				"date":        "$date",
				"time":        "$time",
				"status":      "$status",
				"patientName": "$patient.name",
			}},
		}},
		{"$project": bson.M{
			"doctorId":     "$_id",
			"doctorName":   1,
			"appointments": 1,
			"_id":          0,
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group appointments by doctor: %w", err)
	}
	defer cursor.Close(ctx)

	var grouped []models.DoctorAppointments
	if err := cursor.All(ctx, &grouped); err != nil {
		return nil, fmt.Errorf("failed to decode grouped appointments: %w", err)
	}
	return grouped, nil
}

// DistinctPatientIDs returns the IDs of every patient a doctor has seen or
// will see, one entry per patient.
func (r *mongoAppointmentRepo) DistinctPatientIDs(ctx context.Context, doctorID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "patientId", bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct patient ids for doctor %s: %w", doctorID, err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// CountOnDate returns the number of appointments on a date.
func (r *mongoAppointmentRepo) CountOnDate(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments on %s: %w", date, err)
	}
	return count, nil
}

// RecentOnDate returns the most recently created appointments on a date with
// doctor and patient names joined in, newest first.
func (r *mongoAppointmentRepo) RecentOnDate(ctx context.Context, date string, limit int64) ([]models.TodayAppointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"date": date}},
		{"$sort": bson.M{"createdAt": -1}},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         "doctors",
			"localField":   "doctorId",
			"foreignField": "id",
			"as":           "doctor",
		}},
		{"$unwind": bson.M{"path": "$doctor", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{
			"patientName": 1,
			"doctorName":  "$doctor.name",
			"specialty":   "$doctor.specialty",
			"date":        1,
			"time":        1,
			"_id":         0,
		}},
	}

	opts := options.Aggregate()
	cursor, err := r.coll.Aggregate(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent appointments on %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var rows []models.TodayAppointment
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode recent appointments: %w", err)
	}
	return rows, nil
}
