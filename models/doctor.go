package models

import "time"

// Doctor represents a consulting doctor and their declared weekly availability.
type Doctor struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	TokenHash     string    `bson:"tokenHash,omitempty" json:"-"`
	Phone         string    `bson:"phone" json:"phone"`
	Specialty     string    `bson:"specialty" json:"specialty"`
	Qualification string    `bson:"qualification" json:"qualification"`
	AvailableDays []string  `bson:"availableDays" json:"availableDays"` // e.g. ["Monday", "Wednesday"]
	AvailableTime []string  `bson:"availableTime" json:"availableTime"` // e.g. ["9:00 AM - 1:00 PM", "4:00 PM - 6:00 PM"]
	ProfileImage  string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Fee           float64   `bson:"fee" json:"fee"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// DefaultConsultationFee is applied when a doctor is registered without a fee.
const DefaultConsultationFee = 500
