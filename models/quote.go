package models

// Quote is a short attributed saying attached to a page. Text is required
// and non-blank; author is optional. Full-replace lifecycle.
type Quote struct {
	QuoteID string  `json:"id"`
	PageID  string  `json:"pageId"`
	Text    string  `json:"text"`
	Author  *string `json:"author,omitempty"`

	Position int `json:"-"`
}

// TableName returns the name of the database table
// associated with the Quote model.
func (q Quote) TableName() string {
	return "quotes"
}
