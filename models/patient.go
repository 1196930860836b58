package models

import "time"

// Patient represents a registered patient record.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Age       int       `bson:"age" json:"age"`
	Gender    string    `bson:"gender" json:"gender"`
	Phone     string    `bson:"phone" json:"phone"`
	Place     string    `bson:"place,omitempty" json:"place,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
