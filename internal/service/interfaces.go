package service

import "context"

// Captioner produces a free-text caption for a base64-encoded image.
type Captioner interface {
	Caption(ctx context.Context, imageBase64 string) (string, error)
}

// ImageUploader stores a recipe photo and returns its public URL.
type ImageUploader interface {
	UploadRecipeImage(ctx context.Context, data []byte, contentType string) (string, error)
}
