// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, webhook signature
// verification, JWT token validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClerkIDCtxKey is the key used to store the authenticated session's
// external user key (the identity provider's user ID) in the context.
// Used together with GetClerkIDFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClerkIDCtxKey, "user_2x9...")
var ClerkIDCtxKey = contextKey("clerkID")

// GetClerkIDFromContext retrieves the external user key from the context.
//
// Returns the key as a string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetClerkIDFromContext(ctx context.Context) (string, bool) {
	clerkID, ok := ctx.Value(ClerkIDCtxKey).(string)
	return clerkID, ok
}
