package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// WebhookSecretPrefix marks an identity-provider webhook signing secret.
// The portion after the prefix is the base64-encoded HMAC key.
const WebhookSecretPrefix = "whsec_"

// DecodeWebhookSecret extracts the raw HMAC key from a webhook signing
// secret of the form "whsec_<base64>".
//
// Parameters:
//
//	secret - signing secret as issued by the identity provider
//
// Returns:
//
//	[]byte - decoded HMAC key
//	error  - if the base64 portion cannot be decoded
func DecodeWebhookSecret(secret string) ([]byte, error) {
	encoded := strings.TrimPrefix(secret, WebhookSecretPrefix)
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("error occurred decoding webhook secret: %w", err)
	}
	return key, nil
}

// SignWebhookPayload computes the base64-encoded HMAC-SHA256 signature
// of a webhook delivery over the string "{msgID}.{timestamp}.{body}".
//
// Parameters:
//
//	key       - decoded HMAC key (see DecodeWebhookSecret)
//	msgID     - unique delivery ID from the `svix-id` header
//	timestamp - unix timestamp string from the `svix-timestamp` header
//	body      - raw request body bytes
//
// Returns:
//
//	string - base64-encoded HMAC-SHA256 digest
func SignWebhookPayload(key []byte, msgID, timestamp string, body []byte) string {
	hasher := hmac.New(sha256.New, key)
	hasher.Write([]byte(msgID))
	hasher.Write([]byte("."))
	hasher.Write([]byte(timestamp))
	hasher.Write([]byte("."))
	hasher.Write(body)
	return base64.StdEncoding.EncodeToString(hasher.Sum(nil))
}

// VerifyWebhookSignature checks a webhook delivery against the signatures
// presented in the `svix-signature` header.
//
// The header carries space-separated entries of the form "v1,<base64>";
// verification succeeds if any entry matches the expected signature.
// Comparison is constant-time.
//
// Parameters:
//
//	key             - decoded HMAC key
//	msgID           - delivery ID from the `svix-id` header
//	timestamp       - unix timestamp string from the `svix-timestamp` header
//	body            - raw request body bytes
//	signatureHeader - full `svix-signature` header value
//
// Returns:
//
//	bool - true if at least one presented signature matches
func VerifyWebhookSignature(key []byte, msgID, timestamp string, body []byte, signatureHeader string) bool {
	expected := SignWebhookPayload(key, msgID, timestamp, body)

	for _, entry := range strings.Fields(signatureHeader) {
		version, signature, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(signature), []byte(expected)) {
			return true
		}
	}

	return false
}
