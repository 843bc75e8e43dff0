package models

// Relationship links a named person to the honouree ("Mother", "Friend",
// or a custom label). Full-replace lifecycle.
type Relationship struct {
	RelationshipID string `json:"id"`
	PageID         string `json:"pageId"`

	// Type is one of the suggested relation labels, or a free-form value
	// when IsCustomType is set.
	Type         string `json:"type"`
	IsCustomType bool   `json:"isCustomType"`
	Name         string `json:"name"`

	Position int `json:"-"`
}

// TableName returns the name of the database table
// associated with the Relationship model.
func (r Relationship) TableName() string {
	return "relationships"
}
