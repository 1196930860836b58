package patientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Create inserts a new patient document.
func (r *MongoPatientRepo) Create(p *models.Patient) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// GetByID retrieves a patient document by its ID.
func (r *MongoPatientRepo) GetByID(id string) (*models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Patient
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient with id %s: %w", id, err)
	}
	return &p, nil
}

// GetByIDs retrieves every patient whose ID is in ids.
func (r *MongoPatientRepo) GetByIDs(ids []string) ([]models.Patient, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// GetByPhone retrieves all patients registered under a phone number.
func (r *MongoPatientRepo) GetByPhone(phone string) ([]models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"phone": phone})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients with phone %s: %w", phone, err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// GetAll retrieves all patient documents.
func (r *MongoPatientRepo) GetAll() ([]models.Patient, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients: %w", err)
	}
	return patients, nil
}

// Count returns the total number of patient documents.
func (r *MongoPatientRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}
