package doctorRepo

import (
	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// Create inserts a new doctor record.
	Create(doc *models.Doctor) error
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetByEmail retrieves a doctor by email address.
	GetByEmail(email string) (*models.Doctor, error)
	// GetByTokenHash retrieves the doctor holding the given auth token hash.
	GetByTokenHash(hash string) (*models.Doctor, error)
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// GetAvailableOn retrieves doctors whose available days include the weekday.
	GetAvailableOn(weekday string) ([]models.Doctor, error)
	// UpdateSetDocument applies a partial $set update to a doctor.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Count returns the total number of doctors.
	Count() (int64, error)
}

// MongoDoctorRepo is the MongoDB-backed implementation.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	return &MongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
