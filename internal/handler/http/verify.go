package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/internal/validators"
)

// verifyAccount checks the team's standing against the remote vault and
// returns the reported account status.
func (h *Handler) verifyAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID := chi.URLParam(r, "account_id")
	if accountID == "" {
		log.Error().Str("func", "*Handler.verifyAccount").Msg("no account ID was given")
		writeError(w, validators.ErrNoAccountID)
		return
	}

	status, err := h.services.VerifyService.VerifyAccount(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyAccount").Str("account_id", accountID).Msg("account verification failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
