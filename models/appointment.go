package models

import "time"

// Payment statuses for an appointment's consultation fee.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// Lifecycle statuses for an appointment.
const (
	StatusBooked    = "Booked"
	StatusScheduled = "Scheduled"
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatuses enumerates every status accepted by the status-update operation.
// Any member may transition to any other; there is no terminal state.
var ValidStatuses = []string{
	StatusBooked,
	StatusScheduled,
	StatusPending,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus reports whether s is a recognized appointment status.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Appointment is a booked consultation slot. PatientName is a snapshot taken
// at booking time and is intentionally not kept in sync with later patient
// edits; Fee is likewise copied from the doctor at booking time.
type Appointment struct {
	ID                string    `bson:"id" json:"id"`
	PatientID         string    `bson:"patientId" json:"patientId"`
	PatientName       string    `bson:"patientName" json:"patientName"`
	DoctorID          string    `bson:"doctorId" json:"doctorId"`
	Date              string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time              string    `bson:"time" json:"time"` // e.g. "9:10 AM"
	Fee               float64   `bson:"fee" json:"fee"`
	RazorpayOrderID   string    `bson:"razorpayOrderId,omitempty" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string    `bson:"razorpayPaymentId,omitempty" json:"razorpayPaymentId,omitempty"`
	PaymentStatus     string    `bson:"paymentStatus" json:"paymentStatus"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
