// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/keybridge-io/keybridge/internal/adapter"
	"github.com/keybridge-io/keybridge/internal/crypto"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/validators"
	"github.com/keybridge-io/keybridge/models"
)

// exchangeService is the concrete implementation of ExchangeService. It
// orchestrates one redemption: validate the request, resolve the team and
// requester role, search the vault for matching secrets, then fetch,
// validate, and decrypt one envelope per secret.
//
// Failure semantics: errors before the per-secret loop abort the whole
// request; inside the loop every failure is per-item (logged and skipped),
// and only an empty final result escalates to ErrNoValidSecrets.
type exchangeService struct {
	vault      adapter.VaultAdapter
	keys       KeyStoreService
	engine     crypto.Engine
	accessKeys validators.Validator
	envelopes  EnvelopeVerifier
	logger     *logger.Logger
}

// NewExchangeService constructs an ExchangeService wired to the given
// collaborators. The returned service is safe for concurrent use; all state
// is read-only after construction.
func NewExchangeService(
	vault adapter.VaultAdapter,
	keys KeyStoreService,
	engine crypto.Engine,
	accessKeys validators.Validator,
	envelopes EnvelopeVerifier,
	logger *logger.Logger,
) ExchangeService {
	return &exchangeService{
		vault:      vault,
		keys:       keys,
		engine:     engine,
		accessKeys: accessKeys,
		envelopes:  envelopes,
		logger:     logger,
	}
}

// Redeem trades an access key for the login targets it unlocks.
//
// The request is validated before any network or crypto work: a malformed
// access key or an unknown account id never reaches the vault. The
// requester's role must be in the team's approved set. The vault search
// result is reordered newest-first, then each secret identifier is resolved
// to a login target independently; one bad secret never blocks the others.
//
// Returns the ordered list of targets or:
//   - a validators error for a malformed request (wrong key length).
//   - ErrNoAccountID if no team is configured for the account id.
//   - ErrInvalidRole if the requester's role is not approved.
//   - a wrapped crypto error if the identity key pair cannot be obtained.
//   - a wrapped adapter error if the search call itself fails.
//   - ErrNoValidSecrets if the batch produced zero usable targets.
func (s *exchangeService) Redeem(ctx context.Context, request models.AccessKeyRequest, requester models.Requester) ([]models.LoginTarget, error) {
	log := logger.FromContext(ctx)

	if err := s.accessKeys.Validate(ctx, request); err != nil {
		log.Err(err).Str("account_id", request.AccountID).Msg("redemption request rejected")
		return nil, err
	}

	team, err := s.keys.GetTeamCredential(ctx, request.AccountID)
	if err != nil {
		log.Err(err).Str("account_id", request.AccountID).Msg("account id does not resolve to a team")
		return nil, err
	}

	if !team.RoleApproved(requester.Role) {
		log.Warn().
			Str("account_id", team.AccountID).
			Str("role", requester.Role).
			Msg("requester role is not approved")
		return nil, ErrInvalidRole
	}

	pair, err := s.keys.GetIdentityKeyPair(ctx, true)
	if err != nil {
		log.Err(err).Msg("identity key pair is unavailable")
		return nil, fmt.Errorf("identity key pair is unavailable: %w", err)
	}

	secretIDs, err := s.vault.SearchSecrets(ctx, team, request.AccessKey)
	if err != nil {
		log.Err(err).Str("account_id", team.AccountID).Msg("secret search failed")
		return nil, fmt.Errorf("secret search failed: %w", err)
	}

	targets := make([]models.LoginTarget, 0, len(secretIDs))
	for _, secretID := range newestFirst(secretIDs) {
		target, err := s.resolveSecret(ctx, team, pair, requester, secretID)
		if err != nil {
			if errors.Is(err, crypto.ErrNoIdentityKey) {
				// global, not per-item: without the identity pair no
				// remaining secret can succeed either
				return nil, err
			}
			log.Err(err).
				Str("account_id", team.AccountID).
				Str("secret_id", secretID).
				Msg("secret skipped")
			continue
		}
		targets = append(targets, target)
	}

	if len(targets) == 0 {
		return nil, ErrNoValidSecrets
	}

	return targets, nil
}

// resolveSecret walks one secret identifier through the per-item pipeline:
// signed identity nonce, envelope fetch, shape validation, crypto-box
// decryption of the identifier field, and login URL derivation.
func (s *exchangeService) resolveSecret(ctx context.Context, team models.TeamCredential, pair models.IdentityKeyPair, requester models.Requester, secretID string) (models.LoginTarget, error) {
	nonce, err := s.engine.CreateIdentityNonce(pair)
	if err != nil {
		return models.LoginTarget{}, fmt.Errorf("creating identity nonce: %w", err)
	}

	raw, err := s.vault.GetEnvelope(ctx, team, secretID, requester, nonce)
	if err != nil {
		return models.LoginTarget{}, fmt.Errorf("fetching envelope: %w", err)
	}

	envelope, err := s.envelopes.VerifyEnvelope(raw)
	if err != nil {
		return models.LoginTarget{}, fmt.Errorf("verifying envelope: %w", err)
	}

	identifier, err := s.engine.DecryptCryptoBox(pair, envelope.Identifier, envelope.Nonce, envelope.PublicKey)
	if err != nil {
		return models.LoginTarget{}, fmt.Errorf("decrypting envelope identifier: %w", err)
	}

	return models.LoginTarget{
		ID:       secretID,
		URLParts: s.deriveURLParts(envelope.SiteURL, identifier),
		Envelope: envelope,
	}, nil
}

// deriveURLParts combines the envelope's site URL with the decrypted
// identifier into the final login URL. The endpoint token is the
// deterministic hash of siteURL + identifier, so the same grant always
// derives the same URL.
func (s *exchangeService) deriveURLParts(siteURL, identifier string) models.URLParts {
	endpoint := s.engine.Hash(siteURL, identifier)

	return models.URLParts{
		SiteURL:    siteURL,
		LoginURL:   siteURL + "/" + endpoint + "/" + identifier,
		Endpoint:   endpoint,
		Identifier: identifier,
	}
}

// newestFirst reverses the vault's search result into processing order.
// Ordering policy: the vault returns secret identifiers oldest first; the
// most recently granted secret should be evaluated and offered first, so the
// slice is reversed before the per-secret pipeline runs. The input slice is
// not modified.
func newestFirst(secretIDs []string) []string {
	reversed := make([]string, len(secretIDs))
	for i, id := range secretIDs {
		reversed[len(secretIDs)-1-i] = id
	}
	return reversed
}
