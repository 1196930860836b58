package staffRepo

import (
	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository defines data access for staff accounts.
type StaffRepository interface {
	Create(s *models.Staff) error
	GetByID(id string) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	GetByTokenHash(hash string) (*models.Staff, error)
	GetOnDuty() ([]models.Staff, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	Count() (int64, error)
}

// MongoStaffRepo is the MongoDB-backed implementation.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &MongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}
