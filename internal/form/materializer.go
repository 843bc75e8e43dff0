// Package form materializes flat multipart page submissions into the typed
// records the service layer consumes.
//
// The submission wire format is a flat key space: scalar fields by name
// (slug, honoureeName, ...), singleton media slots that carry either a file
// part or a previously stored reference under the same key, and indexed
// array fields following the collection[index][field] pattern. Collections
// are scanned from index 0 upward until the first index missing its
// discriminating field; gaps truncate the sequence at that point.
//
// Materialization is a pure transform with parse-don't-validate semantics:
// every malformed shape is rejected here with [ErrValidation] rather than
// surfacing downstream.
package form

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/everhold/everhold/models"
)

// dateLayouts are accepted for every submitted date field. Browsers send
// bare dates from date inputs and full RFC 3339 stamps from scripted
// serialization.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

type Materializer struct{}

func NewMaterializer() *Materializer {
	return &Materializer{}
}

// Materialize converts one parsed multipart form into a [models.PageSubmission],
// reading every referenced file part into memory. The returned submission has
// passed all field-level validation.
func (m *Materializer) Materialize(f *multipart.Form) (models.PageSubmission, error) {
	var s models.PageSubmission
	var err error

	s.PageType = models.PageType(formValue(f, "pageType"))
	s.Slug = formValue(f, "slug")
	s.HonoureeName = formValue(f, "honoureeName")
	s.CreatorName = formValue(f, "creatorName")
	s.HasTransitioned = formValue(f, "hasTransitioned") == "true"
	s.Relationship = formValue(f, "relationship")
	s.StoryName = formValue(f, "storyName")
	s.Story = formValue(f, "story")
	s.VideoURL = optValue(f, "videoUrl")
	s.HeadingFont = formValue(f, "headingFont")
	s.BodyFont = formValue(f, "bodyFont")
	s.AccentFont = formValue(f, "accentFont")

	if s.DateOfBirth, err = parseDate("dateOfBirth", formValue(f, "dateOfBirth")); err != nil {
		return models.PageSubmission{}, err
	}
	if s.DateOfPassing, err = parseOptionalDate("dateOfPassing", f); err != nil {
		return models.PageSubmission{}, err
	}

	s.Creator = models.CreatorProfile{
		Email:     formValue(f, "email"),
		FirstName: formValue(f, "firstName"),
		LastName:  formValue(f, "lastName"),
	}

	if s.HonoureePhoto, err = mediaSlot(f, "honoureePhoto"); err != nil {
		return models.PageSubmission{}, err
	}
	if s.CoverPhoto, err = mediaSlot(f, "coverPhoto"); err != nil {
		return models.PageSubmission{}, err
	}
	if s.BackgroundImage, err = mediaSlot(f, "backgroundImage"); err != nil {
		return models.PageSubmission{}, err
	}

	if s.Photos, err = materializePhotos(f); err != nil {
		return models.PageSubmission{}, err
	}
	if s.SoundClips, err = materializeSoundClips(f); err != nil {
		return models.PageSubmission{}, err
	}
	if s.Events, err = materializeEvents(f); err != nil {
		return models.PageSubmission{}, err
	}
	s.Relationships = materializeRelationships(f)
	s.Insights = materializeInsights(f)
	s.Quotes = materializeQuotes(f)

	s.GeneralKnowledge = models.GeneralKnowledgePatch{
		Personality: optValue(f, "personality"),
		Values:      optValue(f, "values"),
		Beliefs:     optValue(f, "beliefs"),
	}
	s.MemorialDetails = models.MemorialDetailsPatch{
		FuneralWishes:       optValue(f, "funeralWishes"),
		Obituary:            optValue(f, "obituary"),
		FuneralHome:         optValue(f, "funeralHome"),
		ViewingDetails:      optValue(f, "viewingDetails"),
		ProcessionDetails:   optValue(f, "processionDetails"),
		ServiceDetails:      optValue(f, "serviceDetails"),
		WakeDetails:         optValue(f, "wakeDetails"),
		FinalRestingPlace:   optValue(f, "finalRestingPlace"),
		Eulogy:              optValue(f, "eulogy"),
		OrderOfService:      optValue(f, "orderOfService"),
		FamilyMessage:       optValue(f, "familyMessage"),
		MemorialVideo:       optValue(f, "memorialVideo"),
		Tributes:            optValue(f, "tributes"),
		MessageFromHonouree: optValue(f, "messageFromHonouree"),
	}

	if err = validateSubmission(&s); err != nil {
		return models.PageSubmission{}, err
	}

	return s, nil
}

func materializePhotos(f *multipart.Form) ([]models.PhotoSubmission, error) {
	var photos []models.PhotoSubmission

	for idx := 0; ; idx++ {
		key := fmt.Sprintf("photos[%d]", idx)
		if !hasFile(f, key+"[file]") && !hasValue(f, key+"[preview]") {
			break
		}

		slot, err := gallerySlot(f, key+"[file]", key+"[preview]")
		if err != nil {
			return nil, err
		}
		dateTaken, err := parseDate(key+"[dateTaken]", formValue(f, key+"[dateTaken]"))
		if err != nil {
			return nil, err
		}

		photos = append(photos, models.PhotoSubmission{
			Slot:        slot,
			DateTaken:   dateTaken,
			Location:    optNonEmpty(f, key+"[location]"),
			Description: optNonEmpty(f, key+"[description]"),
			Category:    optNonEmpty(f, key+"[category]"),
		})
	}

	return photos, nil
}

func materializeSoundClips(f *multipart.Form) ([]models.SoundClipSubmission, error) {
	var clips []models.SoundClipSubmission

	for idx := 0; ; idx++ {
		key := fmt.Sprintf("soundClips[%d]", idx)
		if !hasFile(f, key+"[file]") && !hasValue(f, key+"[preview]") {
			break
		}

		slot, err := gallerySlot(f, key+"[file]", key+"[preview]")
		if err != nil {
			return nil, err
		}
		dateTaken, err := parseDate(key+"[dateTaken]", formValue(f, key+"[dateTaken]"))
		if err != nil {
			return nil, err
		}

		clips = append(clips, models.SoundClipSubmission{
			Slot:        slot,
			DateTaken:   dateTaken,
			Location:    optNonEmpty(f, key+"[location]"),
			Description: optNonEmpty(f, key+"[description]"),
		})
	}

	return clips, nil
}

func materializeEvents(f *multipart.Form) ([]models.Event, error) {
	var events []models.Event

	for idx := 0; ; idx++ {
		key := fmt.Sprintf("events[%d]", idx)
		if !hasValue(f, key+"[name]") {
			break
		}

		date, err := parseDate(key+"[date]", formValue(f, key+"[date]"))
		if err != nil {
			return nil, err
		}
		rsvpBy, err := parseOptionalDateValue(key+"[rsvpBy]", f)
		if err != nil {
			return nil, err
		}

		events = append(events, models.Event{
			Name:           formValue(f, key+"[name]"),
			Date:           date,
			Time:           formValue(f, key+"[time]"),
			RSVPBy:         rsvpBy,
			Location:       formValue(f, key+"[location]"),
			GoogleMapsCode: optNonEmpty(f, key+"[googleMapsCode]"),
			ExternalURL:    optNonEmpty(f, key+"[externalUrl]"),
			Message:        optNonEmpty(f, key+"[message]"),
		})
	}

	return events, nil
}

func materializeRelationships(f *multipart.Form) []models.Relationship {
	var relationships []models.Relationship

	for idx := 0; ; idx++ {
		key := fmt.Sprintf("relationships[%d]", idx)
		if !hasValue(f, key+"[type]") {
			break
		}

		relationships = append(relationships, models.Relationship{
			Type:         formValue(f, key+"[type]"),
			IsCustomType: formValue(f, key+"[isCustomType]") == "true",
			Name:         formValue(f, key+"[name]"),
		})
	}

	return relationships
}

func materializeInsights(f *multipart.Form) []models.Insight {
	var insights []models.Insight

	for idx := 0; ; idx++ {
		key := fmt.Sprintf("insights[%d]", idx)
		if !hasValue(f, key+"[message]") {
			break
		}

		insights = append(insights, models.Insight{
			Message: formValue(f, key+"[message]"),
		})
	}

	return insights
}

func materializeQuotes(f *multipart.Form) []models.Quote {
	var quotes []models.Quote

	for idx := 0; ; idx++ {
		key := fmt.Sprintf("quotes[%d]", idx)
		if !hasValue(f, key+"[text]") {
			break
		}

		quotes = append(quotes, models.Quote{
			Text:   formValue(f, key+"[text]"),
			Author: optNonEmpty(f, key+"[author]"),
		})
	}

	return quotes
}

func formValue(f *multipart.Form, key string) string {
	if values, ok := f.Value[key]; ok && len(values) > 0 {
		return values[0]
	}
	return ""
}

func hasValue(f *multipart.Form, key string) bool {
	values, ok := f.Value[key]
	return ok && len(values) > 0
}

func hasFile(f *multipart.Form, key string) bool {
	files, ok := f.File[key]
	return ok && len(files) > 0
}

// optValue keeps patch semantics: nil when the field was never submitted,
// pointer (possibly to "") when it was.
func optValue(f *multipart.Form, key string) *string {
	if values, ok := f.Value[key]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

// optNonEmpty collapses absent and blank to nil; collection sub-fields have
// no absent-vs-cleared distinction.
func optNonEmpty(f *multipart.Form, key string) *string {
	if v := formValue(f, key); v != "" {
		return &v
	}
	return nil
}

func parseDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, invalidField(field, "is required")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, invalidField(field, "is not a valid date")
}

func parseOptionalDate(field string, f *multipart.Form) (*time.Time, error) {
	return parseOptionalDateValue(field, f)
}

func parseOptionalDateValue(field string, f *multipart.Form) (*time.Time, error) {
	raw := formValue(f, field)
	if raw == "" {
		return nil, nil
	}

	t, err := parseDate(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// mediaSlot materializes a singleton slot whose key carries either a file
// part (new bytes) or a string value (previously stored reference).
func mediaSlot(f *multipart.Form, key string) (models.MediaSlot, error) {
	if hasFile(f, key) {
		upload, err := readFilePart(key, f.File[key][0])
		if err != nil {
			return models.MediaSlot{}, err
		}
		// zero-byte parts are treated as empty slots, never uploaded
		if len(upload.Data) > 0 {
			return models.MediaSlot{Upload: upload}, nil
		}
	}

	if existing := formValue(f, key); existing != "" {
		return models.MediaSlot{ExistingPath: existing}, nil
	}

	return models.MediaSlot{}, nil
}

// gallerySlot materializes a collection entry slot where new bytes and the
// stored reference arrive under distinct keys.
func gallerySlot(f *multipart.Form, fileKey, previewKey string) (models.MediaSlot, error) {
	if hasFile(f, fileKey) {
		upload, err := readFilePart(fileKey, f.File[fileKey][0])
		if err != nil {
			return models.MediaSlot{}, err
		}
		if len(upload.Data) > 0 {
			return models.MediaSlot{Upload: upload}, nil
		}
	}

	if existing := formValue(f, previewKey); existing != "" {
		return models.MediaSlot{ExistingPath: existing}, nil
	}

	return models.MediaSlot{}, nil
}

func readFilePart(key string, header *multipart.FileHeader) (*models.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, invalidField(key, "cannot be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, invalidField(key, "cannot be read")
	}

	return &models.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
