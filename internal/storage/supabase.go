package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/everhold/everhold/internal/config"
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/utils"
)

type supabaseBlobStore struct {
	client *utils.HTTPClient

	baseURL string
	bucket  string

	logger *logger.Logger
}

// NewSupabaseBlobStore constructs a Supabase Storage implementation of
// [BlobStore]. It normalises and validates the base URL from blobCfg.BaseURL,
// and configures the underlying HTTP client with the service key attached as
// a bearer token on every request.
//
// Returns an error if blobCfg.BaseURL is empty or cannot be parsed as a
// valid URL, or if the bucket name is empty.
func NewSupabaseBlobStore(blobCfg config.Blob, requestTimeout time.Duration, logger *logger.Logger) (BlobStore, error) {
	baseURL, err := normalizeBaseURL(blobCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blob store base url: %w", err)
	}
	if strings.TrimSpace(blobCfg.Bucket) == "" {
		return nil, fmt.Errorf("empty blob store bucket")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetAuthToken(blobCfg.ServiceKey)

	return &supabaseBlobStore{
		client:  client,
		baseURL: baseURL,
		bucket:  blobCfg.Bucket,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [BlobStore]. It POSTs the object bytes to
// POST /storage/v1/object/{bucket}/{path} with the x-upsert header set, so
// repeated uploads to a deterministic path replace the previous object
// instead of failing. Returns the object path on success.
func (s *supabaseBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, path))
	if err != nil {
		return "", fmt.Errorf("%w: upload object %s: %s", ErrUpload, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("upload object %s: %w", path, err)
	}

	return path, nil
}

// ResolveURL implements [BlobStore]. It formats the public object URL for
// the given path without any network round trip.
func (s *supabaseBlobStore) ResolveURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}
