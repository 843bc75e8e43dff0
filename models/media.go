package models

import "time"

// MediaType discriminates gallery media records.
type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeAudio MediaType = "AUDIO"
	MediaTypeVideo MediaType = "VIDEO"
)

// MediaItem is one gallery entry owned by a page. The collection is
// replaced wholesale on every update: an item survives an edit only when
// its stored URL is resubmitted verbatim.
type MediaItem struct {
	MediaID string    `json:"id"`
	PageID  string    `json:"pageId"`
	Type    MediaType `json:"type"`

	// URL is the stored-object path for uploaded media, or an external
	// reference left untouched by the upload resolver.
	URL string `json:"url"`

	DateTaken   time.Time `json:"dateTaken"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`

	// Category is meaningful for IMAGE items only.
	Category *string `json:"category,omitempty"`

	// Position preserves submission order within the page's gallery.
	Position int `json:"-"`
}

// TableName returns the name of the database table
// associated with the MediaItem model.
func (m MediaItem) TableName() string {
	return "media_items"
}
