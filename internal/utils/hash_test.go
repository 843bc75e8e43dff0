package utils

import (
	"encoding/base64"
	"testing"
)

func TestDecodeWebhookSecret(t *testing.T) {
	key := []byte("webhook-signing-key")
	secret := WebhookSecretPrefix + base64.StdEncoding.EncodeToString(key)

	decoded, err := DecodeWebhookSecret(secret)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(decoded) != string(key) {
		t.Errorf("expected key %q, got %q", key, decoded)
	}
}

func TestDecodeWebhookSecret_WithoutPrefix(t *testing.T) {
	key := []byte("webhook-signing-key")
	secret := base64.StdEncoding.EncodeToString(key)

	decoded, err := DecodeWebhookSecret(secret)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if string(decoded) != string(key) {
		t.Errorf("expected key %q, got %q", key, decoded)
	}
}

func TestDecodeWebhookSecret_InvalidBase64(t *testing.T) {
	if _, err := DecodeWebhookSecret("whsec_%%%not-base64%%%"); err == nil {
		t.Error("expected error for invalid base64, got nil")
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	key := []byte("webhook-signing-key")
	msgID := "msg_2abcDEF"
	timestamp := "1700000000"
	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)

	valid := "v1," + SignWebhookPayload(key, msgID, timestamp, body)

	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"valid signature", valid, true},
		{"valid among multiple entries", "v1,AAAA " + valid, true},
		{"wrong signature", "v1,AAAA", false},
		{"unknown version", "v2," + SignWebhookPayload(key, msgID, timestamp, body), false},
		{"empty header", "", false},
		{"malformed entry", "v1uncutsignature", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyWebhookSignature(key, msgID, timestamp, body, tt.header)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVerifyWebhookSignature_TamperedBody(t *testing.T) {
	key := []byte("webhook-signing-key")
	header := "v1," + SignWebhookPayload(key, "msg_1", "1700000000", []byte("original"))

	if VerifyWebhookSignature(key, "msg_1", "1700000000", []byte("tampered"), header) {
		t.Error("expected verification to fail for tampered body")
	}
	if VerifyWebhookSignature(key, "msg_2", "1700000000", []byte("original"), header) {
		t.Error("expected verification to fail for different message ID")
	}
	if VerifyWebhookSignature(key, "msg_1", "1700000001", []byte("original"), header) {
		t.Error("expected verification to fail for different timestamp")
	}
}
