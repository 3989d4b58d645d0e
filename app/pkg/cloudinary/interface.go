package cloudinary

import (
	"context"
	"io"
)

// UploadOptions narrows what the hosted service may accept and how it
// transforms the asset. All fields are optional.
type UploadOptions struct {
	Folder         string
	PublicID       string
	AllowedFormats []string
	Transformation string
}

type UploadResult struct {
	PublicID  string `json:"public_id"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
	Format    string `json:"format"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Bytes     int    `json:"bytes"`
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string, opts UploadOptions) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}
