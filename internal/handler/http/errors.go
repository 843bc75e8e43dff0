package http

import "errors"

// Sentinel errors used by the session middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the session middleware when
	// the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrBadWebhookSignature is returned when a webhook delivery fails
	// signature or timestamp verification.
	ErrBadWebhookSignature = errors.New("webhook signature verification failed")
)
