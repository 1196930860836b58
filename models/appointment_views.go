package models

// AppointmentSummary is a flattened appointment row used by listing endpoints.
type AppointmentSummary struct {
	ID          string `bson:"id" json:"id"`
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time" json:"time"`
	Status      string `bson:"status" json:"status"`
	PatientName string `bson:"patientName" json:"patientName"`
}

// DoctorAppointments groups a doctor's appointments for the reception view.
type DoctorAppointments struct {
	DoctorID     string               `bson:"doctorId" json:"doctorId"`
	DoctorName   string               `bson:"doctorName" json:"doctorName"`
	Appointments []AppointmentSummary `bson:"appointments" json:"appointments"`
}

// TodayAppointment is a dashboard row for today's most recent bookings.
type TodayAppointment struct {
	PatientName string `bson:"patientName" json:"patientName"`
	DoctorName  string `bson:"doctorName" json:"doctorName"`
	Specialty   string `bson:"specialty" json:"specialty"`
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time" json:"time"`
}
