package usecase

import (
	"context"

	"creatorhub/internal/domain/service"
)

// UploadUsecase stores creator images.
type UploadUsecase interface {
	// UploadImage validates and stores an image and returns its public URL.
	UploadImage(ctx context.Context, userID string, data []byte) (*UploadOutput, error)

	// OpenUpload reads a stored image by its path below the uploads prefix.
	OpenUpload(ctx context.Context, path string) (*service.StoredObject, error)
}

// UploadOutput is the stored image location.
type UploadOutput struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}
