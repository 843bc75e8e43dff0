package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everhold/everhold/internal/config"
	"github.com/everhold/everhold/internal/logger"
)

func newTestBlobStore(t *testing.T, serverURL string) *supabaseBlobStore {
	t.Helper()

	blobCfg := config.Blob{
		BaseURL:    serverURL,
		Bucket:     "legacy-media",
		ServiceKey: "test-service-key",
	}
	s, err := NewSupabaseBlobStore(blobCfg, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return s.(*supabaseBlobStore)
}

func TestNewSupabaseBlobStore_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Blob
	}{
		{"empty base url", config.Blob{Bucket: "legacy-media"}},
		{"missing host", config.Blob{BaseURL: "https://", Bucket: "legacy-media"}},
		{"empty bucket", config.Blob{BaseURL: "https://example.supabase.co"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSupabaseBlobStore(tt.cfg, time.Second, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestUpload_Success(t *testing.T) {
	data := []byte("fake-jpeg-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/legacy-media/user_1/honouree-photo", r.URL.Path)
		assert.Equal(t, "Bearer test-service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.Header.Get("x-upsert"))
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, data, body)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"legacy-media/user_1/honouree-photo"}`))
	}))
	defer srv.Close()

	s := newTestBlobStore(t, srv.URL)
	path, err := s.Upload(context.Background(), "user_1/honouree-photo", data, "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "user_1/honouree-photo", path)
}

func TestUpload_DefaultContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := newTestBlobStore(t, srv.URL)
	_, err := s.Upload(context.Background(), "user_1/photos/abc", []byte("x"), "")

	require.NoError(t, err)
}

func TestUpload_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("invalid service key"))
	}))
	defer srv.Close()

	s := newTestBlobStore(t, srv.URL)
	_, err := s.Upload(context.Background(), "user_1/honouree-photo", []byte("x"), "image/jpeg")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("bucket quota exceeded"))
	}))
	defer srv.Close()

	s := newTestBlobStore(t, srv.URL)
	_, err := s.Upload(context.Background(), "user_1/photos/abc", []byte("x"), "image/jpeg")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpload)
}

func TestResolveURL(t *testing.T) {
	s := newTestBlobStore(t, "https://example.supabase.co")

	got := s.ResolveURL("user_1/photos/0198c0de-1111-7abc-8def-000000000001")

	assert.Equal(t,
		"https://example.supabase.co/storage/v1/object/public/legacy-media/user_1/photos/0198c0de-1111-7abc-8def-000000000001",
		got)
}
