// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/service"
	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/models"
)

// redeem exchanges one access key for the login targets it grants.
//
// The request body is a [models.AccessKeyRequest]; the requester comes from
// the auth middleware. On success the response is a [models.RedeemResponse]
// with the usable targets ordered newest grant first.
func (h *Handler) redeem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requester, found := requesterFromRequest(r)
	if !found {
		log.Error().Str("func", "*Handler.redeem").Msg("no requester in context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var request models.AccessKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.redeem").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	targets, err := h.services.ExchangeService.Redeem(ctx, request, requester)
	if err != nil {
		log.Err(err).Str("func", "*Handler.redeem").Str("account_id", request.AccountID).Msg("redemption failed")
		writeError(w, err)
		return
	}

	log.Info().
		Str("account_id", request.AccountID).
		Str("requester_id", requester.ID).
		Int("targets", len(targets)).
		Msg("access key redeemed")

	response := models.RedeemResponse{
		LoginTargets: targets,
		Length:       len(targets),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
