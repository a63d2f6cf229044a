package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/internal/validators"
)

// configureTeam replaces the stored credential set for one team. The body is
// a flat settings map; the account id in the path wins over any body value.
func (h *Handler) configureTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID := chi.URLParam(r, "account_id")
	if accountID == "" {
		log.Error().Str("func", "*Handler.configureTeam").Msg("no account ID was given")
		writeError(w, validators.ErrNoAccountID)
		return
	}

	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		log.Err(err).Str("func", "*Handler.configureTeam").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	team, err := h.services.TeamService.ConfigureTeam(ctx, accountID, values)
	if err != nil {
		log.Err(err).Str("func", "*Handler.configureTeam").Str("account_id", accountID).Msg("error configuring team")
		writeError(w, err)
		return
	}

	log.Info().Str("account_id", accountID).Msg("team configured")

	utils.WriteJSON(w, team, http.StatusOK)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID := chi.URLParam(r, "account_id")
	if accountID == "" {
		log.Error().Str("func", "*Handler.getTeam").Msg("no account ID was given")
		writeError(w, validators.ErrNoAccountID)
		return
	}

	team, err := h.services.TeamService.GetTeam(ctx, accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTeam").Str("account_id", accountID).Msg("error getting team")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, team, http.StatusOK)
}

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	teams, err := h.services.TeamService.ListTeams(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTeams").Msg("error listing teams")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, teams, http.StatusOK)
}

func (h *Handler) deleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID := chi.URLParam(r, "account_id")
	if accountID == "" {
		log.Error().Str("func", "*Handler.deleteTeam").Msg("no account ID was given")
		writeError(w, validators.ErrNoAccountID)
		return
	}

	if err := h.services.TeamService.DeleteTeam(ctx, accountID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTeam").Str("account_id", accountID).Msg("error deleting team")
		writeError(w, err)
		return
	}

	log.Info().Str("account_id", accountID).Msg("team deleted")

	w.WriteHeader(http.StatusNoContent)
}
