package doctor

import (
	"context"

	doctorRepo "medicore/database/repository/doctor"
	"medicore/models"
	"medicore/services/storage"
)

// RegisterDoctorInput carries a new doctor's registration data.
// ProfileImagePath is an optional local path to an uploaded image file.
type RegisterDoctorInput struct {
	Name             string
	Email            string
	Password         string
	Phone            string
	Specialty        string
	Qualification    string
	AvailableDays    []string
	AvailableTime    []string
	Fee              float64
	ProfileImagePath string
}

// UpdateDoctorInput carries a partial doctor update; zero-valued fields are
// left untouched.
type UpdateDoctorInput struct {
	Name             string
	Email            string
	Phone            string
	Specialty        string
	Qualification    string
	AvailableDays    []string
	AvailableTime    []string
	Fee              float64
	ProfileImagePath string
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Token        string `json:"token"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// FeeView is a doctor row for the fee listing.
type FeeView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	Fee       float64 `json:"fee"`
}

// DoctorService manages doctor accounts, availability, and fees.
type DoctorService interface {
	Register(ctx context.Context, actor models.Actor, input RegisterDoctorInput) (*models.Doctor, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeToken(doctorID string) error
	GetAll(actor models.Actor) ([]models.Doctor, error)
	GetByID(actor models.Actor, id string) (*models.Doctor, error)
	Update(ctx context.Context, actor models.Actor, id string, input UpdateDoctorInput) (*models.Doctor, error)
	Fees() ([]FeeView, error)
	SetFee(id string, fee float64) (*models.Doctor, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo    doctorRepo.DoctorRepository
	Storage storage.StorageService
}
