package models

// Identity webhook event types delivered by the provider.
const (
	WebhookUserCreated = "user.created"
	WebhookUserUpdated = "user.updated"
	WebhookUserDeleted = "user.deleted"
)

// WebhookEvent is the envelope of one identity-provider event.
type WebhookEvent struct {
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

// WebhookEventData carries the user payload of an identity event. The
// provider sends email addresses as a list; the first entry is treated as
// primary. Deletion events carry only ID.
type WebhookEventData struct {
	ID             string                `json:"id"`
	EmailAddresses []WebhookEmailAddress `json:"email_addresses"`
	FirstName      string                `json:"first_name"`
	LastName       string                `json:"last_name"`
	ImageURL       string                `json:"image_url"`
}

// WebhookEmailAddress is one email entry in an identity event payload.
type WebhookEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the first reported email address, or "" when the
// event carries none.
func (d WebhookEventData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}
