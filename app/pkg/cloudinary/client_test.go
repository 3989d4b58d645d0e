package cloudinary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"backend/insurance-platform/app/internal/config"
	"backend/insurance-platform/app/pkg/cloudinary"
)

func TestSignature(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]string
		secret   string
		expected string
	}{
		{
			name: "sorted parameters with secret appended",
			params: map[string]string{
				"public_id": "abc123",
				"timestamp": "1700000000",
				"folder":    "samples",
			},
			secret:   "secret",
			expected: "c327990df698b1cb24cb71448eae563b2401b6cf",
		},
		{
			name: "api_key, file and signature are excluded",
			params: map[string]string{
				"timestamp": "1700000000",
				"api_key":   "key",
				"file":      "ignored",
				"signature": "ignored",
			},
			secret:   "secret",
			expected: "84af3c6077e429a8e7ff26d2ca13d5feb6bc7cb0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cloudinary.Signature(tt.params, tt.secret))
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (cloudinary.Uploader, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.CloudinaryConfig{
		CloudName:    "test-cloud",
		APIKey:       "test-key",
		APISecret:    "test-secret",
		UploadFolder: "xtbh-insurance/images",
		BaseURL:      server.URL,
	}
	return cloudinary.NewClient(resty.New(), cfg, zap.NewNop()), server
}

func TestClient_Upload(t *testing.T) {
	var gotPath string
	var gotForm map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		gotForm = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotForm[k] = v[0]
		}
		_, _, err := r.FormFile("file")
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"public_id": "xtbh-insurance/images/generated-id",
			"url": "http://res.cloudinary.com/test-cloud/image/upload/generated-id.png",
			"secure_url": "https://res.cloudinary.com/test-cloud/image/upload/generated-id.png",
			"format": "png",
			"width": 640,
			"height": 480,
			"bytes": 12345
		}`))
	})

	result, err := client.Upload(context.Background(), strings.NewReader("fake-image-bytes"), "avatar.png", cloudinary.UploadOptions{
		Folder:         "xtbh-insurance/images",
		PublicID:       "generated-id",
		AllowedFormats: []string{"jpg", "jpeg", "png", "gif", "webp"},
		Transformation: "c_limit,h_800,w_800",
	})

	assert.NoError(t, err)
	assert.Equal(t, "/test-cloud/image/upload", gotPath)
	assert.Equal(t, "xtbh-insurance/images", gotForm["folder"])
	assert.Equal(t, "generated-id", gotForm["public_id"])
	assert.Equal(t, "jpg,jpeg,png,gif,webp", gotForm["allowed_formats"])
	assert.Equal(t, "c_limit,h_800,w_800", gotForm["transformation"])
	assert.Equal(t, "test-key", gotForm["api_key"])
	assert.NotEmpty(t, gotForm["timestamp"])
	// The server would recompute the same signature from the signed params.
	signed := map[string]string{
		"folder":          gotForm["folder"],
		"public_id":       gotForm["public_id"],
		"allowed_formats": gotForm["allowed_formats"],
		"transformation":  gotForm["transformation"],
		"timestamp":       gotForm["timestamp"],
	}
	assert.Equal(t, cloudinary.Signature(signed, "test-secret"), gotForm["signature"])

	assert.Equal(t, "xtbh-insurance/images/generated-id", result.PublicID)
	assert.Equal(t, "https://res.cloudinary.com/test-cloud/image/upload/generated-id.png", result.SecureURL)
	assert.Equal(t, "png", result.Format)
}

func TestClient_Upload_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid image file"}}`))
	})

	_, err := client.Upload(context.Background(), strings.NewReader("not-an-image"), "bad.png", cloudinary.UploadOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid image file")
	assert.Contains(t, err.Error(), "400")
}

func TestClient_Destroy(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})

	err := client.Destroy(context.Background(), "xtbh-insurance/images/generated-id")
	assert.NoError(t, err)
	assert.Equal(t, "/test-cloud/image/destroy", gotPath)
}
