package models

import "time"

// FileUpload carries the bytes of a file part extracted from a multipart
// submission, together with the content type declared by the client.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaSlot is the materialized state of one media field. Exactly one of
// the following holds:
//
//   - Upload is non-nil: the client sent new bytes to store;
//   - ExistingPath is non-empty: the client resubmitted a previously
//     stored reference verbatim, to be retained without re-uploading;
//   - neither: the slot is empty (cleared, or never filled).
type MediaSlot struct {
	Upload       *FileUpload
	ExistingPath string
}

// IsEmpty reports whether the slot carries neither new bytes nor an
// existing reference.
func (s MediaSlot) IsEmpty() bool {
	return s.Upload == nil && s.ExistingPath == ""
}

// PhotoSubmission is one materialized gallery photo record.
type PhotoSubmission struct {
	Slot        MediaSlot
	DateTaken   time.Time
	Location    *string
	Description *string
	Category    *string
}

// SoundClipSubmission is one materialized sound clip record.
type SoundClipSubmission struct {
	Slot        MediaSlot
	DateTaken   time.Time
	Location    *string
	Description *string
}

// CreatorProfile is the identity data the create form carries alongside the
// page fields. It is used to upsert the user mirror when the identity
// webhook has not delivered the account yet.
type CreatorProfile struct {
	Email     string
	FirstName string
	LastName  string
}

// PageSubmission is the typed output of the form materializer: every
// scalar field, media slot, child collection, and singleton patch from one
// multipart submission, in submission order. It contains no persistence
// identities; those are assigned when the write plan executes.
type PageSubmission struct {
	PageType PageType
	Slug     string

	HonoureeName    string
	CreatorName     string
	DateOfBirth     time.Time
	HasTransitioned bool
	DateOfPassing   *time.Time
	Relationship    string
	StoryName       string
	Story           string

	// VideoURL follows patch semantics: nil when the field was absent
	// from the form, pointer (possibly to "") when present.
	VideoURL *string

	// Font selections; empty string means "not submitted" and falls back
	// to the default (create) or the stored value (update).
	HeadingFont string
	BodyFont    string
	AccentFont  string

	HonoureePhoto   MediaSlot
	CoverPhoto      MediaSlot
	BackgroundImage MediaSlot

	Photos     []PhotoSubmission
	SoundClips []SoundClipSubmission

	Events        []Event
	Relationships []Relationship
	Insights      []Insight
	Quotes        []Quote

	GeneralKnowledge GeneralKnowledgePatch
	MemorialDetails  MemorialDetailsPatch

	Creator CreatorProfile
}
