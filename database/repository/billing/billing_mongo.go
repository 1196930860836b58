package billingRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new billing document.
func (r *mongoBillingRepo) Create(ctx context.Context, b *models.Billing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	b.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to create billing record: %w", err)
	}
	return nil
}

// RevenueBetween sums the amounts of paid bills created in [start, end).
func (r *mongoBillingRepo) RevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"paymentStatus": models.PaymentPaid,
			"createdAt":     bson.M{"$gte": start, "$lt": end},
		}},
		{"$group": bson.M{
			"_id":    nil,
			"amount": bson.M{"$sum": "$amount"},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Amount float64 `bson:"amount"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Amount, nil
}
