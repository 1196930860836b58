package staffRepo

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

// Create inserts a new staff document.
func (r *MongoStaffRepo) Create(s *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to create staff record: %w", err)
	}
	return nil
}

// GetByID retrieves a staff document by its ID.
func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Staff
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &s, nil
}

// GetByEmail retrieves a staff document by email.
func (r *MongoStaffRepo) GetByEmail(email string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Staff
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff with email %s: %w", email, err)
	}
	return &s, nil
}

// GetByTokenHash retrieves the staff member holding the given auth token hash.
func (r *MongoStaffRepo) GetByTokenHash(hash string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Staff
	err := r.coll.FindOne(ctx, bson.M{"tokenHash": hash}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff by token hash: %w", err)
	}
	return &s, nil
}

// GetOnDuty retrieves all staff currently marked on duty.
func (r *MongoStaffRepo) GetOnDuty() ([]models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"onDuty": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch on-duty staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, nil
}

// UpdateSetDocument applies a partial $set update to a staff document.
func (r *MongoStaffRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update staff with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}

// Count returns the total number of staff documents.
func (r *MongoStaffRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return count, nil
}
