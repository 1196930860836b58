package storage

import (
	"context"
	"fmt"

	"medicore/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for profile-image storage.
type StorageService interface {
	// UploadImage uploads a local file into the given folder and returns its
	// permanent public URL.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error)
}

// CloudinaryStorage implements StorageService using Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage builds a Cloudinary-backed storage service from the
// application configuration.
func NewCloudinaryStorage() (StorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadImage uploads a local file and returns its secure URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for uploaded file")
	}
	return result.SecureURL, nil
}
