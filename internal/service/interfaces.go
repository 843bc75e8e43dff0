package service

import (
	"context"

	"github.com/everhold/everhold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PageService implements the page lifecycle: creation, full update,
// deletion, the public read, and the session ownership check. All media
// uploads are resolved against the blob store before anything is persisted,
// so a failed upload never leaves a partially written page behind.
type PageService interface {
	// CreatePage creates the page described by submission for the session
	// user identified by clerkID and returns the stored aggregate with
	// media references resolved to public URLs. Returns
	// [store.ErrPageAlreadyExists] when the user already owns a page and
	// [store.ErrSlugAlreadyExists] when the slug is taken.
	CreatePage(ctx context.Context, clerkID string, submission models.PageSubmission) (models.PageAggregate, error)

	// UpdatePage replaces the page identified by slug with the state
	// carried by submission. The page type and the owner never change.
	// Returns [store.ErrPageNotFound] when no page matches and
	// [ErrNotPageOwner] when the session user does not own it.
	UpdatePage(ctx context.Context, clerkID string, slug string, submission models.PageSubmission) (models.PageAggregate, error)

	// DeletePage removes the page identified by slug after verifying that
	// the session user owns it. Children are removed with it.
	DeletePage(ctx context.Context, clerkID string, slug string) error

	// GetPage loads the full public aggregate for a slug, with stored media
	// paths resolved to public URLs.
	GetPage(ctx context.Context, slug string) (models.PageAggregate, error)

	// CheckUserPage reports whether the session user owns a page and, if
	// so, its slug. A user the identity webhook has not mirrored yet simply
	// has no page.
	CheckUserPage(ctx context.Context, clerkID string) (models.CheckPageResponse, error)
}

// UserService mirrors identity-provider accounts from webhook events.
type UserService interface {
	// SyncUser applies one identity event to the local user mirror.
	// Unrecognised event types are ignored.
	SyncUser(ctx context.Context, event models.WebhookEvent) error
}
