package store

import (
	"context"

	"github.com/everhold/everhold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository manages the local mirror of identity-provider accounts.
// Rows are keyed internally by user_id but all lookups from the transport
// layer go through the provider's clerk_id.
type UserRepository interface {
	// UpsertUserByClerkID inserts the user mirror row, or refreshes the
	// profile fields of the existing row with the same clerk_id. The
	// internal user_id of an existing row is never changed. Returns the
	// stored row.
	UpsertUserByClerkID(ctx context.Context, user models.User) (models.User, error)

	// FindUserByClerkID returns the mirror row for the given provider key,
	// or [ErrUserNotFound].
	FindUserByClerkID(ctx context.Context, clerkID string) (models.User, error)

	// DeleteUserByClerkID removes the mirror row. The user's page and all
	// of its children go with it via cascading deletes. Deleting an unknown
	// clerk_id is a no-op.
	DeleteUserByClerkID(ctx context.Context, clerkID string) error
}

// PageRepository persists legacy pages and their owned children. Write
// operations that touch more than one table run inside a single database
// transaction; a page is never observable in a half-written state.
type PageRepository interface {
	// CreatePage inserts the page root, both singleton sub-entity rows, and
	// every child collection row carried by agg. Returns
	// [ErrPageAlreadyExists] when the owner already has a page and
	// [ErrSlugAlreadyExists] when the slug is taken by another page.
	CreatePage(ctx context.Context, agg *models.PageAggregate) error

	// ReplacePage applies a full update to an existing page in one
	// transaction: page scalars are overwritten (page type and owner are
	// never touched), every child collection is deleted and re-inserted
	// from agg, and the two singleton sub-entities are patched in place.
	// Patch fields that are nil preserve the stored value.
	ReplacePage(ctx context.Context, agg *models.PageAggregate, gk models.GeneralKnowledgePatch, md models.MemorialDetailsPatch) error

	// DeletePage removes the page root; children follow via cascading
	// deletes. Returns [ErrPageNotFound] when no row matches.
	DeletePage(ctx context.Context, pageID string) error

	// FindPageBySlug returns the page root row only, without children.
	// Returns [ErrPageNotFound] when no row matches.
	FindPageBySlug(ctx context.Context, slug string) (models.LegacyPage, error)

	// FindPageByUserID returns the page root row owned by the given
	// internal user id. Returns [ErrPageNotFound] when the user has no page.
	FindPageByUserID(ctx context.Context, userID string) (models.LegacyPage, error)

	// GetPageBySlug loads the full aggregate: root row, owner mirror,
	// singleton sub-entities, and all child collections in stored order.
	// Returns [ErrPageNotFound] when no row matches.
	GetPageBySlug(ctx context.Context, slug string) (models.PageAggregate, error)
}
