package models

// Insight is a single free-text reflection attached to a page.
// Full-replace lifecycle.
type Insight struct {
	InsightID string `json:"id"`
	PageID    string `json:"pageId"`
	Message   string `json:"message"`

	Position int `json:"-"`
}

// TableName returns the name of the database table
// associated with the Insight model.
func (i Insight) TableName() string {
	return "insights"
}
