package domain

import (
	"context"
	"time"
)

// SignedUpload is an issued upload grant for the resource library.
type SignedUpload struct {
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ObjectStore issues signed upload URLs scoped to a folder and constructs
// public URLs for stored objects.
type ObjectStore interface {
	SignUpload(ctx context.Context, folder, filename, contentType string) (*SignedUpload, error)
	PublicURL(key string) string
}
