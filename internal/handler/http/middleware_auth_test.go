package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/everhold/everhold/internal/logger"
	"github.com/everhold/everhold/internal/utils"
)

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace middleware when a middleware is exercised on its own.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeSessionAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.sessionAuth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestSessionAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(ctrl)

	var gotClerkID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClerkID, _ = utils.GetClerkIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeSessionAuth(h, "Bearer "+signSessionToken(t, "clerk-1"), next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "clerk-1", gotClerkID)
}

func TestSessionAuth_Rejections(t *testing.T) {
	expiredClaims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "clerk-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	wrongIssuerClaims := jwt.RegisteredClaims{
		Issuer:    "https://somebody-else.example.com",
		Subject:   "clerk-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wrongIssuerClaims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "header without token", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, _ := newTestHandler(ctrl)

			nextCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				nextCalled = true
			})

			rr := executeSessionAuth(h, tt.header, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, nextCalled)
		})
	}
}
