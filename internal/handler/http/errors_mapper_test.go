package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keybridge-io/keybridge/internal/adapter"
	"github.com/keybridge-io/keybridge/internal/service"
	"github.com/keybridge-io/keybridge/internal/store"
	"github.com/keybridge-io/keybridge/internal/validators"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "no account", err: service.ErrNoAccountID, wantStatus: http.StatusNotFound, wantCode: "unknown_account"},
		{name: "invalid role", err: service.ErrInvalidRole, wantStatus: http.StatusForbidden, wantCode: "role_not_approved"},
		{name: "no valid secrets", err: service.ErrNoValidSecrets, wantStatus: http.StatusNotFound, wantCode: "no_valid_secrets"},
		{name: "access key length", err: validators.ErrInvalidAccessKeyLength, wantStatus: http.StatusBadRequest, wantCode: "invalid_access_key"},
		{name: "transport", err: adapter.ErrTransport, wantStatus: http.StatusBadGateway, wantCode: "vault_unreachable"},
		{name: "payment required", err: adapter.ErrPaymentRequired, wantStatus: http.StatusPaymentRequired, wantCode: "payment_required"},
		{name: "team exists", err: store.ErrTeamAlreadyExists, wantStatus: http.StatusConflict, wantCode: "team_exists"},
		{name: "store internals", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
		{
			name:       "wrapped sentinel",
			err:        fmt.Errorf("redeeming key: %w", service.ErrInvalidRole),
			wantStatus: http.StatusForbidden,
			wantCode:   "role_not_approved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, class.status)
			assert.Equal(t, tt.wantCode, class.code)
		})
	}
}
