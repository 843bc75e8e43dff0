package utils

import (
	"context"
	"testing"
)

func TestGetClerkIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClerkIDCtxKey, "user_2abcDEF")

	clerkID, ok := GetClerkIDFromContext(ctx)
	if !ok {
		t.Fatal("expected clerk ID to be present in context")
	}
	if clerkID != "user_2abcDEF" {
		t.Errorf("expected 'user_2abcDEF', got %q", clerkID)
	}
}

func TestGetClerkIDFromContext_Missing(t *testing.T) {
	if _, ok := GetClerkIDFromContext(context.Background()); ok {
		t.Error("expected no clerk ID in empty context")
	}
}

func TestGetClerkIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClerkIDCtxKey, 123)

	if _, ok := GetClerkIDFromContext(ctx); ok {
		t.Error("expected lookup to fail for non-string value")
	}
}
