package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pantryplate/backend/config"
)

// ImageService stores recipe photos in S3 and hands back a public URL
// suitable for a recipe's imageUrl field.
type ImageService struct {
	storage *config.S3Config
	log     *logrus.Logger
}

// NewImageService creates a new ImageService. storage may be nil when
// S3 is not configured; uploads then fail with ErrStorageUnavailable.
func NewImageService(storage *config.S3Config, log *logrus.Logger) *ImageService {
	return &ImageService{storage: storage, log: log}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadRecipeImage writes the image bytes to the configured bucket and
// returns the object's public URL.
func (s *ImageService) UploadRecipeImage(ctx context.Context, data []byte, contentType string) (string, error) {
	if s.storage == nil || s.storage.Client == nil {
		return "", ErrStorageUnavailable
	}

	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", &ValidationError{Field: "image", Message: "unsupported content type " + contentType}
	}

	key := "recipe-images/" + uuid.NewString() + ext
	_, err := s.storage.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.storage.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.storage.BucketName, key)
	s.log.WithFields(logrus.Fields{"key": key, "bytes": len(data)}).Info("uploaded recipe image")
	return url, nil
}
