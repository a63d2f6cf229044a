package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResetIdentity_Success(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.keys.EXPECT().
		ResetIdentityKeyPair(gomock.Any()).
		Return(nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/identity/reset", nil))

	rec := execute(h.resetIdentity, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestResetIdentity_StoreFailure(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.keys.EXPECT().
		ResetIdentityKeyPair(gomock.Any()).
		Return(errors.New("disk on fire"))

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/v1/identity/reset", nil))

	rec := execute(h.resetIdentity, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// internal failure details stay on the server
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}
