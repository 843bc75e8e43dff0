package models

import "time"

// Event is a scheduled gathering attached to a page (service, viewing,
// celebration of life). Full-replace lifecycle: the page's event list is
// rewritten on every update.
type Event struct {
	EventID string `json:"id"`
	PageID  string `json:"pageId"`

	Name string    `json:"name"`
	Date time.Time `json:"date"`

	// Time is a free-form display string ("2:00 PM"), not parsed.
	Time string `json:"time"`

	RSVPBy         *time.Time `json:"rsvpBy,omitempty"`
	Location       string     `json:"location"`
	GoogleMapsCode *string    `json:"googleMapsCode,omitempty"`
	ExternalURL    *string    `json:"externalUrl,omitempty"`
	Message        *string    `json:"message,omitempty"`

	Position int `json:"-"`
}

// TableName returns the name of the database table
// associated with the Event model.
func (e Event) TableName() string {
	return "events"
}
