package models

import "time"

// Staff represents an administrative or reception staff account.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"` // "admin" or "reception"
	OnDuty       bool      `bson:"onDuty" json:"onDuty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
