package manager_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"backend/insurance-platform/app/internal/config"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/manager"
	"backend/insurance-platform/app/pkg/cloudinary"
)

type fakeUploader struct {
	uploadFn  func(ctx context.Context, file io.Reader, filename string, opts cloudinary.UploadOptions) (*cloudinary.UploadResult, error)
	destroyFn func(ctx context.Context, publicID string) error
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, filename string, opts cloudinary.UploadOptions) (*cloudinary.UploadResult, error) {
	return f.uploadFn(ctx, file, filename, opts)
}

func (f *fakeUploader) Destroy(ctx context.Context, publicID string) error {
	return f.destroyFn(ctx, publicID)
}

func newTestUploadManager(uploader cloudinary.Uploader) manager.UploadManager {
	res := runtime.Resource{
		Logger: zap.NewNop(),
		Config: config.ApplicationConfig{
			CloudinaryConfig: config.CloudinaryConfig{UploadFolder: "xtbh-insurance/images"},
		},
	}
	return manager.NewUploadManager(res, uploader)
}

func TestUploadManager_Upload(t *testing.T) {
	var gotOpts cloudinary.UploadOptions
	uploader := &fakeUploader{
		uploadFn: func(_ context.Context, _ io.Reader, _ string, opts cloudinary.UploadOptions) (*cloudinary.UploadResult, error) {
			gotOpts = opts
			return &cloudinary.UploadResult{
				PublicID:  "xtbh-insurance/images/" + opts.PublicID,
				SecureURL: "https://res.cloudinary.com/demo/image/upload/" + opts.PublicID + ".jpg",
			}, nil
		},
	}
	m := newTestUploadManager(uploader)

	resp, err := m.Upload(context.Background(), strings.NewReader("bytes"), "photo.JPG")

	assert.NoError(t, err)
	assert.Equal(t, "xtbh-insurance/images", gotOpts.Folder)
	assert.NotEmpty(t, gotOpts.PublicID)
	assert.Equal(t, []string{"jpg", "jpeg", "png", "gif", "webp"}, gotOpts.AllowedFormats)
	assert.Equal(t, "c_limit,h_800,w_800", gotOpts.Transformation)

	assert.Equal(t, "photo.JPG", resp.OriginalName)
	assert.Equal(t, "xtbh-insurance/images/"+gotOpts.PublicID, resp.PublicID)
	assert.Contains(t, resp.URL, "https://res.cloudinary.com")
}

func TestUploadManager_Upload_RejectsUnsupportedFormat(t *testing.T) {
	uploader := &fakeUploader{
		uploadFn: func(_ context.Context, _ io.Reader, _ string, _ cloudinary.UploadOptions) (*cloudinary.UploadResult, error) {
			t.Fatal("unsupported formats must not reach the uploader")
			return nil, nil
		},
	}
	m := newTestUploadManager(uploader)

	tests := []string{"document.pdf", "archive.zip", "movie.mp4", "noextension"}
	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			_, err := m.Upload(context.Background(), strings.NewReader("bytes"), filename)
			assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
		})
	}
}

func TestUploadManager_Upload_PropagatesUploaderError(t *testing.T) {
	uploader := &fakeUploader{
		uploadFn: func(_ context.Context, _ io.Reader, _ string, _ cloudinary.UploadOptions) (*cloudinary.UploadResult, error) {
			return nil, errors.New("cloudinary upload returned status 500")
		},
	}
	m := newTestUploadManager(uploader)

	_, err := m.Upload(context.Background(), strings.NewReader("bytes"), "photo.png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestUploadManager_Delete(t *testing.T) {
	var gotPublicID string
	uploader := &fakeUploader{
		destroyFn: func(_ context.Context, publicID string) error {
			gotPublicID = publicID
			return nil
		},
	}
	m := newTestUploadManager(uploader)

	err := m.Delete(context.Background(), "xtbh-insurance/images/abc")
	assert.NoError(t, err)
	assert.Equal(t, "xtbh-insurance/images/abc", gotPublicID)
}
