package models

// PageRef is the minimal page descriptor returned by the session check
// endpoint; the client only needs the slug to route to the page.
type PageRef struct {
	Slug string `json:"slug"`
}

// CheckPageResponse answers "does the current session own a page".
// Page is nil when HasPage is false.
type CheckPageResponse struct {
	HasPage bool     `json:"hasPage"`
	Page    *PageRef `json:"page"`
}

// PageResponse wraps a successfully created or updated aggregate. Pure
// acknowledgements (deletes, webhook receipts) carry Success alone.
type PageResponse struct {
	Success bool           `json:"success"`
	Data    *PageAggregate `json:"data,omitempty"`
}

// ErrorResponse is the uniform error body returned by every endpoint.
// Only the public message is included; underlying causes stay in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}
