package appointment

import (
	"context"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository that mimics the
// unique (doctorId, date, time) index.
type fakeAppointmentRepo struct {
	appointments []*models.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	for _, a := range f.appointments {
		if a.DoctorID == appt.DoctorID && a.Date == appt.Date && a.Time == appt.Time {
			return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		}
	}
	cp := *appt
	f.appointments = append(f.appointments, &cp)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.Date == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			a.Status = status
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) SetPaymentOrder(ctx context.Context, id, orderID string, fee float64) error {
	for _, a := range f.appointments {
		if a.ID == id {
			a.RazorpayOrderID = orderID
			a.Fee = fee
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) MarkPaid(ctx context.Context, id, paymentID string) error {
	for _, a := range f.appointments {
		if a.ID == id {
			a.RazorpayPaymentID = paymentID
			a.PaymentStatus = models.PaymentPaid
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) GroupedByDoctor(ctx context.Context) ([]models.DoctorAppointments, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) DistinctPatientIDs(ctx context.Context, doctorID string) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && !seen[a.PatientID] {
			seen[a.PatientID] = true
			ids = append(ids, a.PatientID)
		}
	}
	return ids, nil
}

func (f *fakeAppointmentRepo) CountOnDate(ctx context.Context, date string) (int64, error) {
	var n int64
	for _, a := range f.appointments {
		if a.Date == date {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppointmentRepo) RecentOnDate(ctx context.Context, date string, limit int64) ([]models.TodayAppointment, error) {
	return nil, nil
}

// fakeDoctorRepo is an in-memory DoctorRepository.
type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepo) Create(doc *models.Doctor) error {
	if f.doctors == nil {
		f.doctors = make(map[string]*models.Doctor)
	}
	f.doctors[doc.ID] = doc
	return nil
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) GetByTokenHash(hash string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.TokenHash == hash {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) GetAvailableOn(weekday string) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range f.doctors {
		for _, day := range d.AvailableDays {
			if day == weekday {
				out = append(out, *d)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeDoctorRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}

func (f *fakeDoctorRepo) Count() (int64, error) {
	return int64(len(f.doctors)), nil
}

// fakePatientRepo is an in-memory PatientRepository.
type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepo) Create(p *models.Patient) error {
	if f.patients == nil {
		f.patients = make(map[string]*models.Patient)
	}
	f.patients[p.ID] = p
	return nil
}

func (f *fakePatientRepo) GetByID(id string) (*models.Patient, error) {
	return f.patients[id], nil
}

func (f *fakePatientRepo) GetByIDs(ids []string) ([]models.Patient, error) {
	var out []models.Patient
	for _, id := range ids {
		if p, ok := f.patients[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) GetByPhone(phone string) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range f.patients {
		if p.Phone == phone {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) GetAll() ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePatientRepo) Count() (int64, error) {
	return int64(len(f.patients)), nil
}
