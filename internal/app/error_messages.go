// Package app contains shared application-layer constants used across the
// everhold server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidMultipartForm is returned when the request body cannot be
	// parsed as a multipart form at all.
	MsgInvalidMultipartForm = "invalid multipart form"

	// MsgInvalidWebhookPayload is returned when a webhook delivery passes
	// signature verification but its body is not a valid event envelope.
	MsgInvalidWebhookPayload = "invalid webhook payload"

	// MsgDatabaseUnreachable is returned by the health endpoint when the
	// backing database does not answer a ping.
	MsgDatabaseUnreachable = "database unreachable"

	// MsgHealthy is the status value the health endpoint reports when all
	// checks pass.
	MsgHealthy = "ok"
)
