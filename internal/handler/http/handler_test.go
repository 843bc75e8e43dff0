package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/everhold/everhold/internal/config"
	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/mock"
	"github.com/everhold/everhold/internal/service"
	"github.com/everhold/everhold/internal/utils"
)

// ---- Helpers ----

const (
	testSignKey = "test-sign-key"
	testIssuer  = "https://sessions.example.com"
)

var testWebhookKey = []byte("0123456789abcdef0123456789abcdef")

func testWebhookSecret() string {
	return utils.WebhookSecretPrefix + base64.StdEncoding.EncodeToString(testWebhookKey)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newTestHandler(ctrl *gomock.Controller) (*Handler, *mock.MockPageService, *mock.MockUserService) {
	mockPages := mock.NewMockPageService(ctrl)
	mockUsers := mock.NewMockUserService(ctrl)

	h := NewHandler(
		&service.Services{PageService: mockPages, UserService: mockUsers},
		config.Auth{
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			WebhookSecret: testWebhookSecret(),
		},
		pingerFunc(func(context.Context) error { return nil }),
		logger.Nop(),
	)

	return h, mockPages, mockUsers
}

func signSessionToken(t *testing.T, clerkID string) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   clerkID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	return signed
}

// multipartBody builds a multipart request body from plain form fields.
func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func validCreateFields() map[string]string {
	return map[string]string{
		"pageType":     "MEMORIAL",
		"slug":         "grace-hall",
		"honoureeName": "Grace Hall",
		"dateOfBirth":  "1940-03-14",
	}
}

// serve routes one request through the full router, middleware included.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
