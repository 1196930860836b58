package billingRepo

import (
	"context"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BillingRepository defines data access for billing records.
type BillingRepository interface {
	Create(ctx context.Context, b *models.Billing) error
	// RevenueBetween sums the amounts of paid bills created in [start, end).
	RevenueBetween(ctx context.Context, start, end time.Time) (float64, error)
}

type mongoBillingRepo struct {
	coll *mongo.Collection
}

// NewMongoBillingRepo constructs a new MongoDB BillingRepository.
func NewMongoBillingRepo() BillingRepository {
	return &mongoBillingRepo{
		coll: database.DB().Collection("billings"),
	}
}
