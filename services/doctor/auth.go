package doctor

import (
	"context"
	"time"

	"medicore/models"
	"medicore/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Authenticate verifies a doctor's credentials and issues a session token.
// The token's hash is persisted on the record and cached for fast middleware
// lookups; the raw token is only ever returned to the caller.
func (s *DefaultDoctorService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	doc, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(doc.ID, models.RoleDoctor, tokenDuration)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(doc.ID, bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}); err != nil {
		return nil, err
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + models.RoleDoctor + ":" + tokenHash
	if err := authCache.Set(context.Background(), cacheKey, doc.ID, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache doctor auth token", zap.String("doctorID", doc.ID), zap.Error(err))
	}

	return &AuthResponse{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		Role:         models.RoleDoctor,
		Token:        token,
		ProfileImage: doc.ProfileImage,
	}, nil
}

// RevokeToken invalidates the doctor's current session token.
func (s *DefaultDoctorService) RevokeToken(doctorID string) error {
	doc, err := s.Repo.GetByID(doctorID)
	if err != nil {
		return err
	}
	if doc == nil {
		return ErrNotFound
	}

	if doc.TokenHash != "" {
		cacheKey := utils.AuthCachePrefix + models.RoleDoctor + ":" + doc.TokenHash
		_ = utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()
	}

	return s.Repo.UpdateSetDocument(doctorID, bson.M{"tokenHash": "", "updatedAt": time.Now()})
}
