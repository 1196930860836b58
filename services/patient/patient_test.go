package patient

import (
	"context"
	"testing"

	"medicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPatientRepo struct {
	patients []*models.Patient
}

func (s *stubPatientRepo) Create(p *models.Patient) error {
	s.patients = append(s.patients, p)
	return nil
}

func (s *stubPatientRepo) GetByID(id string) (*models.Patient, error) {
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPatientRepo) GetByIDs(ids []string) ([]models.Patient, error) {
	var out []models.Patient
	for _, id := range ids {
		for _, p := range s.patients {
			if p.ID == id {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (s *stubPatientRepo) GetByPhone(phone string) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range s.patients {
		if p.Phone == phone {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPatientRepo) GetAll() ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range s.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPatientRepo) Count() (int64, error) {
	return int64(len(s.patients)), nil
}

type stubAppointmentLister struct {
	patientIDsByDoctor map[string][]string
}

func (s *stubAppointmentLister) Create(ctx context.Context, appt *models.Appointment) error {
	return nil
}
func (s *stubAppointmentLister) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentLister) GetByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentLister) GetByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentLister) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentLister) SetPaymentOrder(ctx context.Context, id, orderID string, fee float64) error {
	return nil
}
func (s *stubAppointmentLister) MarkPaid(ctx context.Context, id, paymentID string) error {
	return nil
}
func (s *stubAppointmentLister) GroupedByDoctor(ctx context.Context) ([]models.DoctorAppointments, error) {
	return nil, nil
}
func (s *stubAppointmentLister) DistinctPatientIDs(ctx context.Context, doctorID string) ([]string, error) {
	return s.patientIDsByDoctor[doctorID], nil
}
func (s *stubAppointmentLister) CountOnDate(ctx context.Context, date string) (int64, error) {
	return 0, nil
}
func (s *stubAppointmentLister) RecentOnDate(ctx context.Context, date string, limit int64) ([]models.TodayAppointment, error) {
	return nil, nil
}

var admin = models.Actor{ID: "admin-1", Role: models.RoleAdmin}

func TestRegisterRequiresPrivilegedRole(t *testing.T) {
	svc := &DefaultPatientService{Repo: &stubPatientRepo{}}

	_, err := svc.Register(models.Actor{ID: "d1", Role: models.RoleDoctor}, RegisterPatientInput{
		Name: "X", Age: 1, Gender: "Male", Phone: "1", Place: "Town",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := &DefaultPatientService{Repo: &stubPatientRepo{}}

	_, err := svc.Register(admin, RegisterPatientInput{Name: "No Phone", Age: 30, Gender: "Male", Place: "Town"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterFlagsDuplicatePhone(t *testing.T) {
	repo := &stubPatientRepo{}
	svc := &DefaultPatientService{Repo: repo}

	input := RegisterPatientInput{Name: "Ravi Kumar", Age: 42, Gender: "Male", Phone: "9876543210", Place: "Kochi"}
	first, err := svc.Register(admin, input)
	require.NoError(t, err)
	assert.False(t, first.DuplicatePhone)
	assert.NotEmpty(t, first.Patient.ID)

	// Same phone again: allowed, but flagged.
	input.Name = "Ravi's Son"
	second, err := svc.Register(admin, input)
	require.NoError(t, err)
	assert.True(t, second.DuplicatePhone)
	assert.NotEqual(t, first.Patient.ID, second.Patient.ID)
}

func TestGetByPhoneReportsNoMatches(t *testing.T) {
	svc := &DefaultPatientService{Repo: &stubPatientRepo{}}

	_, err := svc.GetByPhone(admin, "0000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOfDoctorListsDistinctPatients(t *testing.T) {
	repo := &stubPatientRepo{}
	require.NoError(t, repo.Create(&models.Patient{ID: "p1", Name: "A", Phone: "1"}))
	require.NoError(t, repo.Create(&models.Patient{ID: "p2", Name: "B", Phone: "2"}))
	require.NoError(t, repo.Create(&models.Patient{ID: "p3", Name: "C", Phone: "3"}))

	svc := &DefaultPatientService{
		Repo: repo,
		Appointments: &stubAppointmentLister{
			patientIDsByDoctor: map[string][]string{"doc-1": {"p1", "p3"}},
		},
	}

	patients, err := svc.OfDoctor(context.Background(), models.Actor{ID: "doc-1", Role: models.RoleDoctor})
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "A", patients[0].Name)
	assert.Equal(t, "C", patients[1].Name)

	_, err = svc.OfDoctor(context.Background(), admin)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
