package doctor

import (
	"context"
	"time"

	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const profileImageFolder = "medicore/doctors"

// Register creates a new doctor account. Admin only.
func (s *DefaultDoctorService) Register(ctx context.Context, actor models.Actor, input RegisterDoctorInput) (*models.Doctor, error) {
	if !actor.HasRole(models.RoleAdmin) {
		return nil, ErrAccessDenied
	}

	if input.Name == "" || input.Email == "" || input.Password == "" || input.Phone == "" ||
		input.Specialty == "" || input.Qualification == "" ||
		len(input.AvailableDays) == 0 || len(input.AvailableTime) == 0 {
		return nil, ErrMissingFields
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	fee := input.Fee
	if fee == 0 {
		fee = models.DefaultConsultationFee
	}

	var profileImage string
	if input.ProfileImagePath != "" && s.Storage != nil {
		profileImage, err = s.Storage.UploadImage(ctx, input.ProfileImagePath, profileImageFolder)
		if err != nil {
			utils.GetLogger().Error("failed to upload doctor profile image", zap.Error(err))
			return nil, err
		}
	}

	doc := &models.Doctor{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hash),
		Phone:         input.Phone,
		Specialty:     input.Specialty,
		Qualification: input.Qualification,
		AvailableDays: input.AvailableDays,
		AvailableTime: input.AvailableTime,
		ProfileImage:  profileImage,
		Fee:           fee,
	}
	if err := s.Repo.Create(doc); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("doctor registered", zap.String("doctorID", doc.ID), zap.String("registeredBy", actor.ID))
	return doc, nil
}

// GetAll lists all doctors. Admin and reception only.
func (s *DefaultDoctorService) GetAll(actor models.Actor) ([]models.Doctor, error) {
	if !actor.HasRole(models.RoleAdmin, models.RoleReception) {
		return nil, ErrAccessDenied
	}
	return s.Repo.GetAll()
}

// GetByID returns a single doctor. Admin and reception only.
func (s *DefaultDoctorService) GetByID(actor models.Actor, id string) (*models.Doctor, error) {
	if !actor.HasRole(models.RoleAdmin, models.RoleReception) {
		return nil, ErrAccessDenied
	}
	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Update applies a partial update to a doctor record. Admin only.
func (s *DefaultDoctorService) Update(ctx context.Context, actor models.Actor, id string, input UpdateDoctorInput) (*models.Doctor, error) {
	if !actor.HasRole(models.RoleAdmin) {
		return nil, ErrAccessDenied
	}

	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	updateFields := bson.M{"updatedAt": time.Now()}
	if input.Name != "" {
		updateFields["name"] = input.Name
	}
	if input.Email != "" {
		updateFields["email"] = input.Email
	}
	if input.Phone != "" {
		updateFields["phone"] = input.Phone
	}
	if input.Specialty != "" {
		updateFields["specialty"] = input.Specialty
	}
	if input.Qualification != "" {
		updateFields["qualification"] = input.Qualification
	}
	if input.AvailableDays != nil {
		updateFields["availableDays"] = input.AvailableDays
	}
	if input.AvailableTime != nil {
		updateFields["availableTime"] = input.AvailableTime
	}
	if input.Fee > 0 {
		updateFields["fee"] = input.Fee
	}
	if input.ProfileImagePath != "" && s.Storage != nil {
		url, err := s.Storage.UploadImage(ctx, input.ProfileImagePath, profileImageFolder)
		if err != nil {
			return nil, err
		}
		updateFields["profileImage"] = url
	}

	if err := s.Repo.UpdateSetDocument(id, updateFields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// Fees lists every doctor's consultation fee.
func (s *DefaultDoctorService) Fees() ([]FeeView, error) {
	docs, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	fees := make([]FeeView, 0, len(docs))
	for _, d := range docs {
		fees = append(fees, FeeView{ID: d.ID, Name: d.Name, Specialty: d.Specialty, Fee: d.Fee})
	}
	return fees, nil
}

// SetFee updates a doctor's consultation fee.
func (s *DefaultDoctorService) SetFee(id string, fee float64) (*models.Doctor, error) {
	if fee <= 0 {
		return nil, ErrInvalidFee
	}

	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}

	if err := s.Repo.UpdateSetDocument(id, bson.M{"fee": fee, "updatedAt": time.Now()}); err != nil {
		return nil, err
	}
	doc.Fee = fee
	return doc, nil
}
