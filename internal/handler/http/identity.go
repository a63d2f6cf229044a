package http

import (
	"net/http"

	"github.com/keybridge-io/keybridge/internal/logger"
)

// resetIdentity discards the install-wide identity key pair. A fresh pair is
// generated lazily on the next redemption, so secrets sealed to the old pair
// become permanently unreadable.
func (h *Handler) resetIdentity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.KeyStoreService.ResetIdentityKeyPair(ctx); err != nil {
		log.Err(err).Str("func", "*Handler.resetIdentity").Msg("error resetting identity key pair")
		writeError(w, err)
		return
	}

	log.Info().Msg("identity key pair reset")

	w.WriteHeader(http.StatusNoContent)
}
