// Package storage provides the outbound gateway to the blob store that
// holds uploaded page media (photos, sound clips, cover images).
//
// The primary abstraction is [BlobStore], which decouples the service layer
// from the hosting provider. The package ships a Supabase Storage
// implementation ([NewSupabaseBlobStore]) speaking the provider's REST API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic
// error handling (e.g. [ErrUpload] for any failed object write).
package storage

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_mock.go -package=mock

// BlobStore defines provider-agnostic access to the media object store.
// Implementations are responsible for authentication, content-type handling,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type BlobStore interface {
	// Upload writes data to the given object path, overwriting any existing
	// object at that path. Returns the stored object path on success.
	// Failed writes return an error wrapping one of this package's sentinel
	// values ([ErrUpload], [ErrUnauthorized], [ErrNotFound]).
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)

	// ResolveURL returns the public URL at which the object stored under
	// path can be fetched. It performs no I/O and does not verify that the
	// object exists.
	ResolveURL(path string) string
}
