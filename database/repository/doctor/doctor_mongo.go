package doctorRepo

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

// Create inserts a new doctor document.
func (r *MongoDoctorRepo) Create(doc *models.Doctor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// GetByID retrieves a doctor document by its ID.
func (r *MongoDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor with id %s: %w", id, err)
	}
	return &doc, nil
}

// GetByEmail retrieves a doctor document by email.
func (r *MongoDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor with email %s: %w", email, err)
	}
	return &doc, nil
}

// GetByTokenHash retrieves the doctor holding the given auth token hash.
func (r *MongoDoctorRepo) GetByTokenHash(hash string) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.Doctor
	err := r.coll.FindOne(ctx, bson.M{"tokenHash": hash}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor by token hash: %w", err)
	}
	return &doc, nil
}

// GetAll retrieves all doctor documents.
func (r *MongoDoctorRepo) GetAll() ([]models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.Doctor
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return docs, nil
}

// GetAvailableOn retrieves doctors available on the given weekday.
func (r *MongoDoctorRepo) GetAvailableOn(weekday string) ([]models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"availableDays": weekday})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors available on %s: %w", weekday, err)
	}
	defer cursor.Close(ctx)

	var docs []models.Doctor
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return docs, nil
}

// UpdateSetDocument applies a partial $set update to a doctor document.
func (r *MongoDoctorRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update doctor with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("doctor with id %s not found", id)
	}
	return nil
}

// Count returns the total number of doctor documents.
func (r *MongoDoctorRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
