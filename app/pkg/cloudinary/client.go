package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/insurance-platform/app/internal/config"
)

type DefaultClient struct {
	httpClient *resty.Client
	cfg        config.CloudinaryConfig
	logger     *zap.Logger
}

func NewClient(httpClient *resty.Client, cfg config.CloudinaryConfig, logger *zap.Logger) Uploader {
	return &DefaultClient{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *DefaultClient) Upload(ctx context.Context, file io.Reader, filename string, opts UploadOptions) (*UploadResult, error) {
	params := map[string]string{
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	if opts.Folder != "" {
		params["folder"] = opts.Folder
	}
	if opts.PublicID != "" {
		params["public_id"] = opts.PublicID
	}
	if len(opts.AllowedFormats) > 0 {
		params["allowed_formats"] = strings.Join(opts.AllowedFormats, ",")
	}
	if opts.Transformation != "" {
		params["transformation"] = opts.Transformation
	}
	params["signature"] = Signature(params, c.cfg.APISecret)
	params["api_key"] = c.cfg.APIKey

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFileReader("file", filename, file).
		SetFormData(params).
		Post(c.cfg.APIBaseURL() + "/image/upload")
	if err != nil {
		c.logger.Error("cloudinary upload request failed", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}
	if resp.IsError() {
		return nil, c.apiError("upload", resp)
	}

	var result UploadResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		c.logger.Error("failed to unmarshal cloudinary response", zap.Error(err))
		return nil, err
	}
	return &result, nil
}

func (c *DefaultClient) Destroy(ctx context.Context, publicID string) error {
	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	params["signature"] = Signature(params, c.cfg.APISecret)
	params["api_key"] = c.cfg.APIKey

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(params).
		Post(c.cfg.APIBaseURL() + "/image/destroy")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return c.apiError("destroy", resp)
	}
	return nil
}

func (c *DefaultClient) apiError(op string, resp *resty.Response) error {
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error.Message != "" {
		return fmt.Errorf("cloudinary %s returned status %d: %s", op, resp.StatusCode(), body.Error.Message)
	}
	return fmt.Errorf("cloudinary %s returned status %d", op, resp.StatusCode())
}

// Signature computes the request signature Cloudinary expects: parameters
// sorted by name, serialized as k=v pairs joined with '&', with the API
// secret appended, hashed with SHA-1. The api_key and signature parameters
// themselves are never part of the signed payload.
func Signature(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "signature" || k == "api_key" || k == "file" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
