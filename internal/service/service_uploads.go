package service

import (
	"context"
	"strings"

	"github.com/everhold/everhold/internal/storage"
	"github.com/everhold/everhold/internal/utils"
	"github.com/everhold/everhold/models"
)

// Object names of the three singleton media slots. Deterministic per user,
// so re-uploading replaces the stored object in place.
const (
	objectHonoureePhoto   = "honouree-photo"
	objectCoverPhoto      = "cover-photo"
	objectBackgroundImage = "background-image"
)

// resolvedMedia is the output of the upload resolver: stored-object paths
// for the singleton slots and the flattened gallery, ready to persist.
type resolvedMedia struct {
	honoureePhoto   *string
	coverPhoto      *string
	backgroundImage *string
	mediaItems      []models.MediaItem
}

// uploadResolver turns the media slots of a submission into stored-object
// paths, uploading new bytes through the blob store. It runs before any
// repository write: when an upload fails the page is left untouched.
type uploadResolver struct {
	blobStore storage.BlobStore
	ids       *utils.UUIDGenerator
}

func newUploadResolver(blobStore storage.BlobStore) *uploadResolver {
	return &uploadResolver{
		blobStore: blobStore,
		ids:       utils.NewUUIDGenerator(),
	}
}

func (r *uploadResolver) resolve(ctx context.Context, userID string, submission models.PageSubmission) (resolvedMedia, error) {
	var media resolvedMedia
	var err error

	if media.honoureePhoto, err = r.resolveSlot(ctx, userID, objectHonoureePhoto, submission.HonoureePhoto); err != nil {
		return resolvedMedia{}, err
	}
	if media.coverPhoto, err = r.resolveSlot(ctx, userID, objectCoverPhoto, submission.CoverPhoto); err != nil {
		return resolvedMedia{}, err
	}
	if media.backgroundImage, err = r.resolveSlot(ctx, userID, objectBackgroundImage, submission.BackgroundImage); err != nil {
		return resolvedMedia{}, err
	}

	for _, photo := range submission.Photos {
		url, err := r.resolveGallerySlot(ctx, userID, "photos", photo.Slot)
		if err != nil {
			return resolvedMedia{}, err
		}
		media.mediaItems = append(media.mediaItems, models.MediaItem{
			Type:        models.MediaTypeImage,
			URL:         url,
			DateTaken:   photo.DateTaken,
			Location:    photo.Location,
			Description: photo.Description,
			Category:    photo.Category,
		})
	}

	for _, clip := range submission.SoundClips {
		url, err := r.resolveGallerySlot(ctx, userID, "sound-clips", clip.Slot)
		if err != nil {
			return resolvedMedia{}, err
		}
		media.mediaItems = append(media.mediaItems, models.MediaItem{
			Type:        models.MediaTypeAudio,
			URL:         url,
			DateTaken:   clip.DateTaken,
			Location:    clip.Location,
			Description: clip.Description,
		})
	}

	return media, nil
}

// resolveSlot handles a singleton slot: new bytes are uploaded to the
// slot's deterministic path, a resubmitted reference is retained without a
// gateway call, and an empty slot resolves to nil.
func (r *uploadResolver) resolveSlot(ctx context.Context, userID string, object string, slot models.MediaSlot) (*string, error) {
	switch {
	case slot.Upload != nil:
		path := userID + "/" + object
		if _, err := r.blobStore.Upload(ctx, path, slot.Upload.Data, slot.Upload.ContentType); err != nil {
			return nil, err
		}
		return &path, nil
	case slot.ExistingPath != "":
		path := r.storedPath(slot.ExistingPath)
		return &path, nil
	}
	return nil, nil
}

// resolveGallerySlot handles one gallery record: new bytes get a fresh
// unique path under the user's prefix, a resubmitted reference is retained
// verbatim.
func (r *uploadResolver) resolveGallerySlot(ctx context.Context, userID string, folder string, slot models.MediaSlot) (string, error) {
	switch {
	case slot.Upload != nil:
		path := userID + "/" + folder + "/" + r.ids.Generate()
		if _, err := r.blobStore.Upload(ctx, path, slot.Upload.Data, slot.Upload.ContentType); err != nil {
			return "", err
		}
		return path, nil
	case slot.ExistingPath != "":
		return r.storedPath(slot.ExistingPath), nil
	}
	return "", nil
}

// storedPath normalizes a resubmitted reference. The edit form sends back
// the public URLs it was served, so anything under our public prefix is
// trimmed to the stored-object path; external references pass through
// untouched.
func (r *uploadResolver) storedPath(existing string) string {
	prefix := r.blobStore.ResolveURL("")
	if path, found := strings.CutPrefix(existing, prefix); found && path != "" {
		return path
	}
	return existing
}
