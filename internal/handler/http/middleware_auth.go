package http

import (
	"context"
	"net/http"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/service"
	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/models"
)

// auth is an HTTP middleware that enforces JWT-based requester
// authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the authenticated [models.Requester] in the request context under
// [utils.RequesterCtxKey] before delegating to the next handler. The role
// claim inside the requester is later checked against the team's
// approved-roles set by the exchange service.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// "Authorization" header is absent, cannot be parsed as a bearer token, or
// carries an expired or otherwise invalid token. All rejection events are
// logged using the context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			writeError(w, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		// Store the authenticated requester in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.RequesterCtxKey, token.Claims.Requester())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requesterFromRequest fetches the authenticated requester stored by the
// auth middleware.
func requesterFromRequest(r *http.Request) (models.Requester, bool) {
	return utils.GetRequesterFromContext(r.Context())
}
