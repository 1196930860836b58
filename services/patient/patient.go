package patient

import (
	"context"
	"errors"

	appointmentRepo "medicore/database/repository/appointment"
	patientRepo "medicore/database/repository/patient"
	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAccessDenied is returned when the actor's role does not permit the operation.
	ErrAccessDenied = errors.New("access denied")
	// ErrMissingFields is returned when required registration fields are absent.
	ErrMissingFields = errors.New("all fields are required: name, age, gender, phone, place")
	// ErrNotFound is returned when a patient lookup resolves to nothing.
	ErrNotFound = errors.New("no patients found")
)

// RegisterPatientInput carries a walk-in patient registration.
type RegisterPatientInput struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
	Place  string `json:"place"`
}

// RegistrationResult reports the created patient and whether the phone number
// was already in use. Duplicate phones are allowed; families often share one.
type RegistrationResult struct {
	Patient        *models.Patient `json:"patient"`
	DuplicatePhone bool            `json:"duplicatePhone"`
}

// PatientService manages patient records.
type PatientService interface {
	Register(actor models.Actor, input RegisterPatientInput) (*RegistrationResult, error)
	GetAll(actor models.Actor) ([]models.Patient, error)
	GetByPhone(actor models.Actor, phone string) ([]models.Patient, error)
	OfDoctor(ctx context.Context, actor models.Actor) ([]models.Patient, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo         patientRepo.PatientRepository
	Appointments appointmentRepo.AppointmentRepository
}

// Register creates a patient record. Admin and reception only.
func (s *DefaultPatientService) Register(actor models.Actor, input RegisterPatientInput) (*RegistrationResult, error) {
	if !actor.HasRole(models.RoleAdmin, models.RoleReception) {
		return nil, ErrAccessDenied
	}
	if input.Name == "" || input.Age == 0 || input.Gender == "" || input.Phone == "" || input.Place == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.Repo.GetByPhone(input.Phone)
	if err != nil {
		return nil, err
	}

	p := &models.Patient{
		ID:     uuid.New().String(),
		Name:   input.Name,
		Age:    input.Age,
		Gender: input.Gender,
		Phone:  input.Phone,
		Place:  input.Place,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("patient registered",
		zap.String("patientID", p.ID),
		zap.String("registeredBy", actor.ID),
	)
	return &RegistrationResult{Patient: p, DuplicatePhone: len(existing) > 0}, nil
}

// GetAll lists all patients. Admin, reception, and doctors.
func (s *DefaultPatientService) GetAll(actor models.Actor) ([]models.Patient, error) {
	if !actor.HasRole(models.RoleAdmin, models.RoleReception, models.RoleDoctor) {
		return nil, ErrAccessDenied
	}
	return s.Repo.GetAll()
}

// GetByPhone finds patients registered under a phone number. Admin and
// reception only.
func (s *DefaultPatientService) GetByPhone(actor models.Actor, phone string) ([]models.Patient, error) {
	if !actor.HasRole(models.RoleAdmin, models.RoleReception) {
		return nil, ErrAccessDenied
	}
	patients, err := s.Repo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, ErrNotFound
	}
	return patients, nil
}

// OfDoctor lists the distinct patients appearing in the acting doctor's
// appointments.
func (s *DefaultPatientService) OfDoctor(ctx context.Context, actor models.Actor) ([]models.Patient, error) {
	if actor.Role != models.RoleDoctor {
		return nil, ErrAccessDenied
	}

	ids, err := s.Appointments.DistinctPatientIDs(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByIDs(ids)
}
