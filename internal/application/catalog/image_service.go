package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ObjectStorageService abstracts presigned object storage operations
type ObjectStorageService interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageService issues presigned upload URLs for product images.
// Clients upload directly to object storage and submit the resulting
// public URL with the publication.
type ImageService struct {
	storage ObjectStorageService
	logger  *zap.Logger
}

// NewImageService creates a new image service
func NewImageService(storage ObjectStorageService, logger *zap.Logger) *ImageService {
	return &ImageService{
		storage: storage,
		logger:  logger,
	}
}

// RequestUploadURL validates the file type and returns a presigned PUT URL
func (s *ImageService) RequestUploadURL(ctx context.Context, input UploadURLRequest) (*UploadURLResult, error) {
	ext, ok := allowedImageTypes[strings.ToLower(input.ContentType)]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "Only JPEG, PNG and WebP images are accepted")
	}

	key := fmt.Sprintf("products/%s/%s%s", input.SellerID, uuid.New(), ext)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, input.ContentType, 0)
	if err != nil {
		s.logger.Error("Failed to generate upload URL", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}

	return &UploadURLResult{
		UploadURL: uploadURL,
		ObjectKey: key,
		PublicURL: path.Join("/media", key),
		ExpiresAt: expiresAt,
	}, nil
}

// DeleteImage removes an uploaded image, e.g. after a publication edit
func (s *ImageService) DeleteImage(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return nil
	}
	if err := s.storage.DeleteObject(ctx, objectKey); err != nil {
		s.logger.Error("Failed to delete image", zap.String("key", objectKey), zap.Error(err))
		return shared.ErrStorageUnavailable
	}
	return nil
}
