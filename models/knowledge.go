package models

// GeneralKnowledge is the 0-or-1 per page free-text sub-entity describing
// the honouree's personality, values, and beliefs. It is upserted in place,
// never replaced wholesale: fields absent from an update submission keep
// their prior value.
type GeneralKnowledge struct {
	KnowledgeID string  `json:"id"`
	PageID      string  `json:"pageId"`
	Personality *string `json:"personality,omitempty"`
	Values      *string `json:"values,omitempty"`
	Beliefs     *string `json:"beliefs,omitempty"`
}

// TableName returns the name of the database table
// associated with the GeneralKnowledge model.
func (g GeneralKnowledge) TableName() string {
	return "general_knowledge"
}

// GeneralKnowledgePatch carries a partial update: nil means "leave the
// stored value unchanged", a pointer to "" means "clear to NULL", any other
// pointer overwrites.
type GeneralKnowledgePatch struct {
	Personality *string
	Values      *string
	Beliefs     *string
}

// IsZero reports whether the patch carries no field at all.
func (p GeneralKnowledgePatch) IsZero() bool {
	return p.Personality == nil && p.Values == nil && p.Beliefs == nil
}

// MemorialDetails is the 0-or-1 per page sub-entity holding funeral and
// remembrance information. Populated meaningfully for MEMORIAL pages but
// the row exists for every page with a uniform field set, matching the
// creation flow. Same upsert-in-place semantics as GeneralKnowledge.
type MemorialDetails struct {
	DetailsID string `json:"id"`
	PageID    string `json:"pageId"`

	FuneralWishes       *string `json:"funeralWishes,omitempty"`
	Obituary            *string `json:"obituary,omitempty"`
	FuneralHome         *string `json:"funeralHome,omitempty"`
	ViewingDetails      *string `json:"viewingDetails,omitempty"`
	ProcessionDetails   *string `json:"processionDetails,omitempty"`
	ServiceDetails      *string `json:"serviceDetails,omitempty"`
	WakeDetails         *string `json:"wakeDetails,omitempty"`
	FinalRestingPlace   *string `json:"finalRestingPlace,omitempty"`
	Eulogy              *string `json:"eulogy,omitempty"`
	OrderOfService      *string `json:"orderOfService,omitempty"`
	FamilyMessage       *string `json:"familyMessage,omitempty"`
	MemorialVideo       *string `json:"memorialVideo,omitempty"`
	Tributes            *string `json:"tributes,omitempty"`
	MessageFromHonouree *string `json:"messageFromHonouree,omitempty"`
}

// TableName returns the name of the database table
// associated with the MemorialDetails model.
func (m MemorialDetails) TableName() string {
	return "memorial_details"
}

// MemorialDetailsPatch mirrors MemorialDetails with partial-update
// semantics: nil preserves, pointer-to-empty clears, anything else sets.
type MemorialDetailsPatch struct {
	FuneralWishes       *string
	Obituary            *string
	FuneralHome         *string
	ViewingDetails      *string
	ProcessionDetails   *string
	ServiceDetails      *string
	WakeDetails         *string
	FinalRestingPlace   *string
	Eulogy              *string
	OrderOfService      *string
	FamilyMessage       *string
	MemorialVideo       *string
	Tributes            *string
	MessageFromHonouree *string
}

// IsZero reports whether the patch carries no field at all.
func (p MemorialDetailsPatch) IsZero() bool {
	return p == MemorialDetailsPatch{}
}
