package staff

import (
	"context"
	"errors"
	"time"

	staffRepo "medicore/database/repository/staff"
	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

var (
	// ErrAccessDenied is returned when the actor's role does not permit the operation.
	ErrAccessDenied = errors.New("access denied")
	// ErrMissingFields is returned when required registration fields are absent.
	ErrMissingFields = errors.New("all fields are required")
	// ErrDuplicateEmail is returned when a staff member with the email already exists.
	ErrDuplicateEmail = errors.New("staff member already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRole is returned when the requested role is not a staff role.
	ErrInvalidRole = errors.New("invalid staff role")
	// ErrNotFound is returned when a staff ID resolves to nothing.
	ErrNotFound = errors.New("staff member not found")
)

// RegisterStaffInput carries a new staff member's registration data.
type RegisterStaffInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// StaffService manages administrative and reception accounts.
type StaffService interface {
	Register(actor models.Actor, input RegisterStaffInput) (*models.Staff, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeToken(staffID string) error
	SetOnDuty(actor models.Actor, staffID string, onDuty bool) error
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

// Register creates a new staff account. Admin only.
func (s *DefaultStaffService) Register(actor models.Actor, input RegisterStaffInput) (*models.Staff, error) {
	if !actor.HasRole(models.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, ErrMissingFields
	}
	if input.Role != models.RoleAdmin && input.Role != models.RoleReception {
		return nil, ErrInvalidRole
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

	member := &models.Staff{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := s.Repo.Create(member); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("staff registered",
		zap.String("staffID", member.ID),
		zap.String("role", member.Role),
		zap.String("registeredBy", actor.ID),
	)
	return member, nil
}

// Authenticate verifies a staff member's credentials and issues a session
// token. The token's hash is persisted and cached the same way doctor
// sessions are.
func (s *DefaultStaffService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	member, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if member == nil || member.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(member.ID, member.Role, tokenDuration)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(member.ID, bson.M{"tokenHash": tokenHash, "onDuty": true, "updatedAt": time.Now()}); err != nil {
		return nil, err
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + member.Role + ":" + tokenHash
	if err := authCache.Set(context.Background(), cacheKey, member.ID, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache staff auth token", zap.String("staffID", member.ID), zap.Error(err))
	}

	return &AuthResponse{
		ID:    member.ID,
		Name:  member.Name,
		Email: member.Email,
		Role:  member.Role,
		Token: token,
	}, nil
}

// RevokeToken invalidates the staff member's current session token and marks
// them off duty.
func (s *DefaultStaffService) RevokeToken(staffID string) error {
	member, err := s.Repo.GetByID(staffID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotFound
	}

	if member.TokenHash != "" {
		cacheKey := utils.AuthCachePrefix + member.Role + ":" + member.TokenHash
		_ = utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()
	}

	return s.Repo.UpdateSetDocument(staffID, bson.M{"tokenHash": "", "onDuty": false, "updatedAt": time.Now()})
}

// SetOnDuty toggles a staff member's duty flag. Admin only.
func (s *DefaultStaffService) SetOnDuty(actor models.Actor, staffID string, onDuty bool) error {
	if !actor.HasRole(models.RoleAdmin) {
		return ErrAccessDenied
	}

	member, err := s.Repo.GetByID(staffID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotFound
	}

	return s.Repo.UpdateSetDocument(staffID, bson.M{"onDuty": onDuty, "updatedAt": time.Now()})
}
