package models

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PageType discriminates the three kinds of legacy pages. It is fixed at
// creation time; the update path never writes it.
type PageType string

const (
	PageTypeMemorial      PageType = "MEMORIAL"
	PageTypeBiography     PageType = "BIOGRAPHY"
	PageTypeAutobiography PageType = "AUTOBIOGRAPHY"
)

// Default font selections applied when the submission leaves them blank.
const (
	DefaultHeadingFont = "Playfair Display"
	DefaultBodyFont    = "Lora"
	DefaultAccentFont  = "Great Vibes"
)

// slugPattern is the canonical URL-key format: lowercase alphanumerics and
// hyphens, 3 to 50 characters. The same rule is CHECKed in the schema.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]{3,50}$`)

// ValidSlug reports whether value is an acceptable page slug.
func ValidSlug(value string) bool {
	return slugPattern.MatchString(value)
}

// ValidPageType reports whether value names a known page type.
func ValidPageType(value string) bool {
	switch PageType(value) {
	case PageTypeMemorial, PageTypeBiography, PageTypeAutobiography:
		return true
	}
	return false
}

// SlugRule is the shared ozzo validation rule for page slugs.
var SlugRule = []validation.Rule{
	validation.Required,
	validation.Match(slugPattern).Error("must be 3-50 lowercase letters, digits or hyphens"),
}

// LegacyPage is the aggregate root: one memorial, biography, or
// autobiography owned by exactly one user. Media slot fields hold
// stored-object paths, not public URLs; resolution to URLs happens at the
// storage gateway.
type LegacyPage struct {
	PageID   string   `json:"id"`
	UserID   string   `json:"userId"`
	Slug     string   `json:"slug"`
	PageType PageType `json:"pageType"`

	HonoureeName    string     `json:"honoureeName"`
	CreatorName     string     `json:"creatorName"`
	DateOfBirth     time.Time  `json:"dateOfBirth"`
	HasTransitioned bool       `json:"hasTransitioned"`
	DateOfPassing   *time.Time `json:"dateOfPassing,omitempty"`
	Relationship    string     `json:"relationship"`
	StoryName       string     `json:"storyName"`
	Story           string     `json:"story"`

	// Stored-object paths for the three singleton media slots.
	// Nil means the slot has never been filled.
	HonoureePhoto   *string `json:"honoureePhoto,omitempty"`
	CoverPhoto      *string `json:"coverPhoto,omitempty"`
	BackgroundImage *string `json:"backgroundImage,omitempty"`

	// VideoURL is an optional external video reference, stored verbatim.
	VideoURL *string `json:"videoUrl,omitempty"`

	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
	AccentFont  string `json:"accentFont"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the LegacyPage model.
func (p LegacyPage) TableName() string {
	return "legacy_pages"
}

// PageAggregate is a fully loaded page: the root row plus every owned
// child collection and both singleton sub-entities. This is the unit the
// public read path returns and the update path replaces.
type PageAggregate struct {
	LegacyPage
	User *User `json:"user,omitempty"`

	GeneralKnowledge *GeneralKnowledge `json:"generalKnowledge,omitempty"`
	MemorialDetails  *MemorialDetails  `json:"memorialDetails,omitempty"`

	MediaItems    []MediaItem    `json:"mediaItems"`
	Events        []Event        `json:"events"`
	Relationships []Relationship `json:"relationships"`
	Insights      []Insight      `json:"insights"`
	Quotes        []Quote        `json:"quotes"`
}
