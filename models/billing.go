package models

import "time"

// Billing is a payment record created when a consultation fee is verified.
type Billing struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	Amount        float64   `bson:"amount" json:"amount"`
	BillingDate   time.Time `bson:"billingDate" json:"billingDate"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	Details       string    `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
