package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/keybridge-io/keybridge/internal/service"
	"github.com/keybridge-io/keybridge/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	middleware.ServeHTTP(rec, req)
	return rec
}

func nextMustNotBeCalled(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})
}

func TestAuth_NoHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := executeAuth(h, "", nextMustNotBeCalled(t))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no token", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
		{name: "too many parts", header: "Bearer one two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := executeAuth(h, tt.header, nextMustNotBeCalled(t))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.auth.EXPECT().
		ParseToken(gomock.Any(), "bad-token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rec := executeAuth(h, "Bearer bad-token", nextMustNotBeCalled(t))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_Success_StoresRequester(t *testing.T) {
	h, svcs := newTestHandler(t)

	claims := models.RequesterClaims{Name: "Alice Agent", Role: "administrator"}
	claims.Subject = "42"

	svcs.auth.EXPECT().
		ParseToken(gomock.Any(), "good-token").
		Return(models.Token{Claims: claims}, nil)

	var got models.Requester
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = requesterFromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	rec := executeAuth(h, "Bearer good-token", next)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, models.Requester{ID: "42", Name: "Alice Agent", Role: "administrator"}, got)
}
