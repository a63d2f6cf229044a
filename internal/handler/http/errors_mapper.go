package http

import (
	"errors"
	"net/http"

	"github.com/keybridge-io/keybridge/internal/adapter"
	"github.com/keybridge-io/keybridge/internal/service"
	"github.com/keybridge-io/keybridge/internal/store"
	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/internal/validators"
	"github.com/keybridge-io/keybridge/models"
)

// errorClass pairs the HTTP status of a known failure with the stable
// machine-readable code exposed in [models.ErrorResponse].
type errorClass struct {
	status int
	code   string
}

var errorClassMap = map[error]errorClass{
	service.ErrNoAccountID:             {http.StatusNotFound, "unknown_account"},
	service.ErrInvalidRole:             {http.StatusForbidden, "role_not_approved"},
	service.ErrNoValidSecrets:          {http.StatusNotFound, "no_valid_secrets"},
	service.ErrNoIdentityKeyPair:       {http.StatusNotFound, "no_identity_key"},
	service.ErrNoTeamValues:            {http.StatusBadRequest, "no_team_values"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, "invalid_token"},

	models.ErrInvalidTeamKey: {http.StatusBadRequest, "invalid_team_key"},

	validators.ErrInvalidAccessKeyLength: {http.StatusBadRequest, "invalid_access_key"},
	validators.ErrNoAccountID:            {http.StatusBadRequest, "no_account_id"},

	adapter.ErrTransport:        {http.StatusBadGateway, "vault_unreachable"},
	adapter.ErrAuthRequired:     {http.StatusBadGateway, "vault_auth_missing"},
	adapter.ErrSignatureInvalid: {http.StatusBadGateway, "signature_rejected"},
	adapter.ErrNotFound:         {http.StatusNotFound, "not_found"},
	adapter.ErrAPIErrors:        {http.StatusBadGateway, "vault_errors"},
	adapter.ErrPaymentRequired:  {http.StatusPaymentRequired, "payment_required"},
	adapter.ErrBadCredentials:   {http.StatusBadGateway, "bad_vault_credentials"},
	adapter.ErrUnknownAccount:   {http.StatusNotFound, "unknown_account"},
	adapter.ErrAccountInactive:  {http.StatusConflict, "account_inactive"},
	adapter.ErrWrongMethod:      {http.StatusBadGateway, "vault_errors"},
	adapter.ErrServerError:      {http.StatusBadGateway, "vault_errors"},
	adapter.ErrContactSupport:   {http.StatusInternalServerError, "contact_support"},

	store.ErrBuildingSQLQuery:    {http.StatusInternalServerError, "internal_error"},
	store.ErrExecutingQuery:      {http.StatusInternalServerError, "internal_error"},
	store.ErrExecutingStatement:  {http.StatusInternalServerError, "internal_error"},
	store.ErrScanningRow:         {http.StatusInternalServerError, "internal_error"},
	store.ErrScanningRows:        {http.StatusInternalServerError, "internal_error"},
	store.ErrSealingKey:          {http.StatusInternalServerError, "internal_error"},
	store.ErrTeamAlreadyExists:   {http.StatusConflict, "team_exists"},
	store.ErrTeamNotFound:        {http.StatusNotFound, "unknown_account"},
	store.ErrIdentityKeyNotFound: {http.StatusNotFound, "no_identity_key"},
}

func classifyError(err error) errorClass {
	for target, class := range errorClassMap {
		if errors.Is(err, target) {
			return class
		}
	}
	return errorClass{http.StatusInternalServerError, "internal_error"}
}

// writeError renders err as a [models.ErrorResponse]. Internal failures are
// reduced to the generic status text so storage and crypto details never
// reach the caller.
func writeError(w http.ResponseWriter, err error) {
	class := classifyError(err)

	message := err.Error()
	if class.status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Code: class.code, Message: message}, class.status)
}
