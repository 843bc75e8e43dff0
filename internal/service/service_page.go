package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/storage"
	"github.com/everhold/everhold/internal/store"
	"github.com/everhold/everhold/models"
)

// pageService is the concrete implementation of PageService. It owns the
// ordering guarantee of every write path: media uploads are resolved
// against the blob store first, and only then does a single repository
// transaction persist the page state.
type pageService struct {
	// pageRepository is the data-access layer for pages and their children.
	pageRepository store.PageRepository

	// userRepository resolves session clerk IDs to the local user mirror.
	userRepository store.UserRepository

	// blobStore stores media bytes and formats public URLs for stored paths.
	blobStore storage.BlobStore

	// uploads turns submission media slots into stored-object paths.
	uploads *uploadResolver

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPageService constructs a PageService wired to the given repositories
// and blob store.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewPageService(pageRepository store.PageRepository, userRepository store.UserRepository, blobStore storage.BlobStore, logger *logger.Logger) PageService {
	return &pageService{
		pageRepository: pageRepository,
		userRepository: userRepository,
		blobStore:      blobStore,
		uploads:        newUploadResolver(blobStore),
		logger:         logger,
	}
}

// CreatePage creates a page for the session user.
//
// The user mirror is looked up by clerkID and, when the identity webhook
// has not delivered it yet, upserted from the profile fields the create
// form carries. A user who already owns a page is rejected before any
// upload happens.
//
// Returns the freshly stored aggregate with public media URLs, or:
//   - store.ErrPageAlreadyExists if the user already owns a page.
//   - store.ErrSlugAlreadyExists if the slug is taken by another page.
//   - a wrapped storage.ErrUpload if a media upload fails (nothing is
//     persisted in that case).
func (p *pageService) CreatePage(ctx context.Context, clerkID string, submission models.PageSubmission) (models.PageAggregate, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByClerkID(ctx, clerkID)
	if errors.Is(err, store.ErrUserNotFound) {
		user, err = p.userRepository.UpsertUserByClerkID(ctx, models.User{
			ClerkID:   clerkID,
			Email:     submission.Creator.Email,
			FirstName: submission.Creator.FirstName,
			LastName:  submission.Creator.LastName,
		})
	}
	if err != nil {
		log.Err(err).Str("func", "CreatePage").Str("clerk_id", clerkID).Msg("resolving session user failed")
		return models.PageAggregate{}, fmt.Errorf("resolving session user failed: %w", err)
	}

	_, err = p.pageRepository.FindPageByUserID(ctx, user.UserID)
	if err == nil {
		log.Error().Str("func", "CreatePage").Str("user_id", user.UserID).Msg("user already owns a page")
		return models.PageAggregate{}, store.ErrPageAlreadyExists
	}
	if !errors.Is(err, store.ErrPageNotFound) {
		log.Err(err).Str("func", "CreatePage").Str("user_id", user.UserID).Msg("page ownership check failed")
		return models.PageAggregate{}, fmt.Errorf("page ownership check failed: %w", err)
	}

	media, err := p.uploads.resolve(ctx, user.UserID, submission)
	if err != nil {
		log.Err(err).Str("func", "CreatePage").Str("user_id", user.UserID).Msg("resolving media uploads failed")
		return models.PageAggregate{}, fmt.Errorf("resolving media uploads failed: %w", err)
	}

	agg := models.PageAggregate{
		LegacyPage: models.LegacyPage{
			UserID:          user.UserID,
			Slug:            submission.Slug,
			PageType:        submission.PageType,
			HonoureeName:    submission.HonoureeName,
			CreatorName:     submission.CreatorName,
			DateOfBirth:     submission.DateOfBirth,
			HasTransitioned: submission.HasTransitioned,
			DateOfPassing:   submission.DateOfPassing,
			Relationship:    submission.Relationship,
			StoryName:       submission.StoryName,
			Story:           submission.Story,
			HonoureePhoto:   media.honoureePhoto,
			CoverPhoto:      media.coverPhoto,
			BackgroundImage: media.backgroundImage,
			VideoURL:        nonBlank(submission.VideoURL),
			HeadingFont:     fallback(submission.HeadingFont, models.DefaultHeadingFont),
			BodyFont:        fallback(submission.BodyFont, models.DefaultBodyFont),
			AccentFont:      fallback(submission.AccentFont, models.DefaultAccentFont),
		},
		GeneralKnowledge: &models.GeneralKnowledge{
			Personality: submission.GeneralKnowledge.Personality,
			Values:      submission.GeneralKnowledge.Values,
			Beliefs:     submission.GeneralKnowledge.Beliefs,
		},
		MemorialDetails: memorialDetailsFromPatch(submission.MemorialDetails),
		MediaItems:      media.mediaItems,
		Events:          submission.Events,
		Relationships:   submission.Relationships,
		Insights:        submission.Insights,
		Quotes:          submission.Quotes,
	}

	if err := p.pageRepository.CreatePage(ctx, &agg); err != nil {
		log.Err(err).Str("func", "CreatePage").Str("slug", submission.Slug).Msg("page creation ended with error")
		return models.PageAggregate{}, fmt.Errorf("page creation ended with error: %w", err)
	}

	return p.GetPage(ctx, submission.Slug)
}

// UpdatePage replaces the state of an existing page.
//
// The page type and the owner from the submission are ignored; empty
// singleton media slots keep the stored object, empty font fields keep the
// stored selection, and a nil video URL keeps the stored one. Child
// collections are replaced wholesale with what the submission carries.
//
// Returns the updated aggregate with public media URLs, or:
//   - store.ErrPageNotFound if no page has the given slug.
//   - ErrNotPageOwner if the session user does not own it.
//   - store.ErrSlugAlreadyExists if a slug change collides.
//   - a wrapped storage.ErrUpload if a media upload fails.
func (p *pageService) UpdatePage(ctx context.Context, clerkID string, slug string, submission models.PageSubmission) (models.PageAggregate, error) {
	log := logger.FromContext(ctx)

	page, err := p.authorizePageAccess(ctx, clerkID, slug)
	if err != nil {
		log.Err(err).Str("func", "UpdatePage").Str("slug", slug).Msg("page access check failed")
		return models.PageAggregate{}, err
	}

	media, err := p.uploads.resolve(ctx, page.UserID, submission)
	if err != nil {
		log.Err(err).Str("func", "UpdatePage").Str("user_id", page.UserID).Msg("resolving media uploads failed")
		return models.PageAggregate{}, fmt.Errorf("resolving media uploads failed: %w", err)
	}

	updated := page
	updated.Slug = fallback(submission.Slug, page.Slug)
	updated.HonoureeName = submission.HonoureeName
	updated.CreatorName = submission.CreatorName
	updated.DateOfBirth = submission.DateOfBirth
	updated.HasTransitioned = submission.HasTransitioned
	updated.DateOfPassing = submission.DateOfPassing
	updated.Relationship = submission.Relationship
	updated.StoryName = submission.StoryName
	updated.Story = submission.Story
	updated.HonoureePhoto = slotOrStored(media.honoureePhoto, page.HonoureePhoto)
	updated.CoverPhoto = slotOrStored(media.coverPhoto, page.CoverPhoto)
	updated.BackgroundImage = slotOrStored(media.backgroundImage, page.BackgroundImage)
	updated.HeadingFont = fallback(submission.HeadingFont, page.HeadingFont)
	updated.BodyFont = fallback(submission.BodyFont, page.BodyFont)
	updated.AccentFont = fallback(submission.AccentFont, page.AccentFont)
	if submission.VideoURL != nil {
		updated.VideoURL = nonBlank(submission.VideoURL)
	}

	agg := models.PageAggregate{
		LegacyPage:    updated,
		MediaItems:    media.mediaItems,
		Events:        submission.Events,
		Relationships: submission.Relationships,
		Insights:      submission.Insights,
		Quotes:        submission.Quotes,
	}

	if err := p.pageRepository.ReplacePage(ctx, &agg, submission.GeneralKnowledge, submission.MemorialDetails); err != nil {
		log.Err(err).Str("func", "UpdatePage").Str("page_id", page.PageID).Msg("page update ended with error")
		return models.PageAggregate{}, fmt.Errorf("page update ended with error: %w", err)
	}

	return p.GetPage(ctx, updated.Slug)
}

// DeletePage removes a page and everything it owns.
//
// Returns store.ErrPageNotFound when no page matches the slug and
// ErrNotPageOwner when the session user does not own it.
func (p *pageService) DeletePage(ctx context.Context, clerkID string, slug string) error {
	log := logger.FromContext(ctx)

	page, err := p.authorizePageAccess(ctx, clerkID, slug)
	if err != nil {
		log.Err(err).Str("func", "DeletePage").Str("slug", slug).Msg("page access check failed")
		return err
	}

	if err := p.pageRepository.DeletePage(ctx, page.PageID); err != nil {
		log.Err(err).Str("func", "DeletePage").Str("page_id", page.PageID).Msg("page deletion ended with error")
		return fmt.Errorf("page deletion ended with error: %w", err)
	}

	return nil
}

// GetPage loads the full public aggregate for a slug. Stored media paths
// are resolved to public URLs; external references pass through untouched.
//
// Returns store.ErrPageNotFound when no page matches.
func (p *pageService) GetPage(ctx context.Context, slug string) (models.PageAggregate, error) {
	log := logger.FromContext(ctx)

	agg, err := p.pageRepository.GetPageBySlug(ctx, slug)
	if err != nil {
		log.Err(err).Str("func", "GetPage").Str("slug", slug).Msg("page load ended with error")
		return models.PageAggregate{}, fmt.Errorf("page load ended with error: %w", err)
	}

	p.resolveAggregateURLs(&agg)

	return agg, nil
}

// CheckUserPage reports whether the session user owns a page. A clerk ID
// the webhook channel has not mirrored yet simply has no page; that is not
// an error.
func (p *pageService) CheckUserPage(ctx context.Context, clerkID string) (models.CheckPageResponse, error) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByClerkID(ctx, clerkID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.CheckPageResponse{HasPage: false}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "CheckUserPage").Str("clerk_id", clerkID).Msg("session user lookup failed")
		return models.CheckPageResponse{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	page, err := p.pageRepository.FindPageByUserID(ctx, user.UserID)
	if errors.Is(err, store.ErrPageNotFound) {
		return models.CheckPageResponse{HasPage: false}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "CheckUserPage").Str("user_id", user.UserID).Msg("page ownership check failed")
		return models.CheckPageResponse{}, fmt.Errorf("page ownership check failed: %w", err)
	}

	return models.CheckPageResponse{
		HasPage: true,
		Page:    &models.PageRef{Slug: page.Slug},
	}, nil
}

// authorizePageAccess loads the page root for slug and verifies that the
// session user owns it. A clerk ID without a user mirror cannot own
// anything, so it fails the same way a foreign user does.
func (p *pageService) authorizePageAccess(ctx context.Context, clerkID string, slug string) (models.LegacyPage, error) {
	page, err := p.pageRepository.FindPageBySlug(ctx, slug)
	if err != nil {
		return models.LegacyPage{}, err
	}

	user, err := p.userRepository.FindUserByClerkID(ctx, clerkID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.LegacyPage{}, ErrNotPageOwner
	}
	if err != nil {
		return models.LegacyPage{}, err
	}

	if page.UserID != user.UserID {
		return models.LegacyPage{}, ErrNotPageOwner
	}

	return page, nil
}

// resolveAggregateURLs rewrites stored-object paths to public URLs in
// place, on the singleton slots and every gallery item.
func (p *pageService) resolveAggregateURLs(agg *models.PageAggregate) {
	agg.HonoureePhoto = p.publicURL(agg.HonoureePhoto)
	agg.CoverPhoto = p.publicURL(agg.CoverPhoto)
	agg.BackgroundImage = p.publicURL(agg.BackgroundImage)

	for i := range agg.MediaItems {
		if url := p.publicURL(&agg.MediaItems[i].URL); url != nil {
			agg.MediaItems[i].URL = *url
		}
	}
}

func (p *pageService) publicURL(path *string) *string {
	if path == nil || *path == "" {
		return path
	}
	if strings.Contains(*path, "://") {
		return path
	}

	url := p.blobStore.ResolveURL(*path)
	return &url
}

// slotOrStored prefers the freshly resolved slot path, falling back to the
// stored one when the submission left the slot empty.
func slotOrStored(resolved *string, stored *string) *string {
	if resolved != nil {
		return resolved
	}
	return stored
}

// nonBlank collapses a pointer to the empty string into nil.
func nonBlank(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}

func fallback(value string, fallbackValue string) string {
	if value == "" {
		return fallbackValue
	}
	return value
}

func memorialDetailsFromPatch(patch models.MemorialDetailsPatch) *models.MemorialDetails {
	return &models.MemorialDetails{
		FuneralWishes:       patch.FuneralWishes,
		Obituary:            patch.Obituary,
		FuneralHome:         patch.FuneralHome,
		ViewingDetails:      patch.ViewingDetails,
		ProcessionDetails:   patch.ProcessionDetails,
		ServiceDetails:      patch.ServiceDetails,
		WakeDetails:         patch.WakeDetails,
		FinalRestingPlace:   patch.FinalRestingPlace,
		Eulogy:              patch.Eulogy,
		OrderOfService:      patch.OrderOfService,
		FamilyMessage:       patch.FamilyMessage,
		MemorialVideo:       patch.MemorialVideo,
		Tributes:            patch.Tributes,
		MessageFromHonouree: patch.MessageFromHonouree,
	}
}
