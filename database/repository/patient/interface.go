package patientRepo

import (
	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PatientRepository defines methods for patient data access.
type PatientRepository interface {
	// Create inserts a new patient record.
	Create(p *models.Patient) error
	// GetByID retrieves a patient by its unique ID.
	GetByID(id string) (*models.Patient, error)
	// GetByIDs retrieves every patient whose ID is in ids.
	GetByIDs(ids []string) ([]models.Patient, error)
	// GetByPhone retrieves all patients registered under a phone number.
	GetByPhone(phone string) ([]models.Patient, error)
	// GetAll retrieves all patients.
	GetAll() ([]models.Patient, error)
	// Count returns the total number of patients.
	Count() (int64, error)
}

// MongoPatientRepo is the MongoDB-backed implementation.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	return &MongoPatientRepo{
		coll: database.DB().Collection("patients"),
	}
}
