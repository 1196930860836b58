package models

// PatientDetails carries inline patient registration data supplied with a
// booking request. All four fields are required when this mode is used.
type PatientDetails struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
}

// BookAppointmentInput is the boundary shape of a booking request.
// Exactly one of PatientID or Patient must be supplied.
type BookAppointmentInput struct {
	PatientID string          `json:"patientId,omitempty"`
	Patient   *PatientDetails `json:"patient,omitempty"`
	DoctorID  string          `json:"doctorId"`
	Date      string          `json:"date"`           // "YYYY-MM-DD"
	Time      string          `json:"time,omitempty"` // optional "H:MM AM|PM"; auto-assigned when empty
}
