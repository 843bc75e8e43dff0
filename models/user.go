package models

import "time"

// User mirrors an account managed by the external identity provider.
// Rows are created and maintained by the identity webhook channel
// (user.created / user.updated / user.deleted); the page endpoints only
// read them, except for the create path which may upsert a missing mirror
// from the submitted form.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Never tied to the identity provider's numbering scheme.
	UserID string `json:"id"`

	// ClerkID is the identity provider's opaque user key.
	// Unique across all mirrored accounts.
	ClerkID string `json:"clerkId"`

	// Email is the user's primary email address as reported by the provider.
	Email string `json:"email"`

	// FirstName and LastName are display attributes from the provider.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// ImageURL is the optional profile image URL. Nil when the provider
	// did not supply one.
	ImageURL *string `json:"imageUrl,omitempty"`

	// CreatedAt is the timestamp when the mirror row was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last webhook-driven update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
