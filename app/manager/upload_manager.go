package manager

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"backend/insurance-platform/app/api/client/exception"
	"backend/insurance-platform/app/api/client/response"
	"backend/insurance-platform/app/internal/config"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/pkg/cloudinary"
	"backend/insurance-platform/app/pkg/util/collection"
)

// allowedUploadFormats is the image allow-list checked before anything
// leaves the process.
var allowedUploadFormats = []string{"jpg", "jpeg", "png", "gif", "webp"}

// uploadTransformation bounds every stored image to 800x800 without
// upscaling.
const uploadTransformation = "c_limit,h_800,w_800"

type UploadManager interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*response.UploadResponse, error)
	Delete(ctx context.Context, publicID string) error
}

type DefaultUploadManager struct {
	logger   *zap.Logger
	cfg      config.CloudinaryConfig
	uploader cloudinary.Uploader
}

func NewUploadManager(res runtime.Resource, uploader cloudinary.Uploader) UploadManager {
	return &DefaultUploadManager{
		logger:   res.Logger,
		cfg:      res.Config.CloudinaryConfig,
		uploader: uploader,
	}
}

func (m *DefaultUploadManager) Upload(ctx context.Context, file io.Reader, filename string) (*response.UploadResponse, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	supported := collection.Contains(allowedUploadFormats, func(format string) bool {
		return format == ext
	})
	if !supported {
		return nil, exception.NewBadRequestError(
			exception.ErrInvalidParameter,
			int(exception.ErrorCodeInvalidParameter),
			fmt.Sprintf("unsupported file format: %s (allowed: %s)", ext, strings.Join(allowedUploadFormats, ", ")),
		)
	}

	result, err := m.uploader.Upload(ctx, file, filename, cloudinary.UploadOptions{
		Folder:         m.cfg.UploadFolder,
		PublicID:       uuid.NewString(),
		AllowedFormats: allowedUploadFormats,
		Transformation: uploadTransformation,
	})
	if err != nil {
		m.logger.Error("upload to cloudinary failed", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}

	return &response.UploadResponse{
		URL:          url,
		PublicID:     result.PublicID,
		OriginalName: filename,
	}, nil
}

func (m *DefaultUploadManager) Delete(ctx context.Context, publicID string) error {
	return m.uploader.Destroy(ctx, publicID)
}
