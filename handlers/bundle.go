package handlers

import (
	"medicore/services/appointment"
	"medicore/services/dashboard"
	"medicore/services/doctor"
	"medicore/services/patient"
	"medicore/services/payment"
	"medicore/services/staff"
)

// HandlerBundle groups all endpoint handlers around their services.
type HandlerBundle struct {
	Appointments appointment.AppointmentService
	Doctors      doctor.DoctorService
	Patients     patient.PatientService
	Payments     payment.PaymentService
	Dashboard    dashboard.DashboardService
	Staff        staff.StaffService
}

// NewHandlerBundle wires the handlers against concrete services.
func NewHandlerBundle(
	appointments appointment.AppointmentService,
	doctors doctor.DoctorService,
	patients patient.PatientService,
	payments payment.PaymentService,
	dash dashboard.DashboardService,
	staffSvc staff.StaffService,
) *HandlerBundle {
	return &HandlerBundle{
		Appointments: appointments,
		Doctors:      doctors,
		Patients:     patients,
		Payments:     payments,
		Dashboard:    dash,
		Staff:        staffSvc,
	}
}
