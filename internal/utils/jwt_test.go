package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "test-issuer"
)

func signSessionToken(t *testing.T, claims jwt.RegisteredClaims, key string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return signed
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	signed := signSessionToken(t, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "user_2abcDEF",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, testSignKey)

	token, err := ValidateAndParseJWTToken(signed, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.ClerkID != "user_2abcDEF" {
		t.Errorf("expected ClerkID 'user_2abcDEF', got %q", token.ClerkID)
	}
	if token.Token == nil {
		t.Error("expected non-nil underlying jwt.Token")
	}
}

func TestValidateAndParseJWTToken_Invalid(t *testing.T) {
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "wrong sign key",
			token: signSessionToken(t, jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "user_1",
				ExpiresAt: future,
			}, "other-key"),
		},
		{
			name: "wrong issuer",
			token: signSessionToken(t, jwt.RegisteredClaims{
				Issuer:    "someone-else",
				Subject:   "user_1",
				ExpiresAt: future,
			}, testSignKey),
		},
		{
			name: "expired",
			token: signSessionToken(t, jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "user_1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}, testSignKey),
		},
		{
			name: "missing subject",
			token: signSessionToken(t, jwt.RegisteredClaims{
				Issuer:    testIssuer,
				ExpiresAt: future,
			}, testSignKey),
		},
		{
			name:  "garbage token",
			token: "not-a-jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, testSignKey, testIssuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer ", "", true},
		{"bare token", "abc.def.ghi", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
