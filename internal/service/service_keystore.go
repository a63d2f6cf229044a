package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/keybridge-io/keybridge/internal/crypto"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/store"
	"github.com/keybridge-io/keybridge/models"
)

// keyStoreService is the concrete implementation of KeyStoreService. It
// fronts the team and identity repositories and owns lazy generation of the
// install-wide identity key pair.
type keyStoreService struct {
	teams    store.TeamRepository
	identity store.IdentityRepository
	engine   crypto.Engine
	logger   *logger.Logger
}

// NewKeyStoreService constructs a KeyStoreService backed by the given
// repositories. engine supplies key-pair generation for the lazy path.
func NewKeyStoreService(teams store.TeamRepository, identity store.IdentityRepository, engine crypto.Engine, logger *logger.Logger) KeyStoreService {
	return &keyStoreService{
		teams:    teams,
		identity: identity,
		engine:   engine,
		logger:   logger,
	}
}

// GetTeamCredential resolves accountID to a configured team. Returns
// ErrNoAccountID when the id is empty or no team is configured for it.
func (k *keyStoreService) GetTeamCredential(ctx context.Context, accountID string) (models.TeamCredential, error) {
	if accountID == "" {
		return models.TeamCredential{}, ErrNoAccountID
	}

	team, err := k.teams.GetTeamByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			return models.TeamCredential{}, ErrNoAccountID
		}
		return models.TeamCredential{}, fmt.Errorf("resolving team credential: %w", err)
	}

	return team, nil
}

// GetIdentityKeyPair returns the install's identity key pair.
//
// When no pair exists and generateIfMissing is true, a fresh pair is
// generated and persisted in a single upsert. A concurrent first-time
// initialization may race; last write wins, which is acceptable because the
// pair only backs append-only identity proofs. Generation is never retried
// implicitly.
//
// When no pair exists and generateIfMissing is false, ErrNoIdentityKeyPair
// is returned and nothing is mutated.
func (k *keyStoreService) GetIdentityKeyPair(ctx context.Context, generateIfMissing bool) (models.IdentityKeyPair, error) {
	log := logger.FromContext(ctx)

	pair, err := k.identity.GetIdentityKeyPair(ctx)
	if err == nil {
		return pair, nil
	}
	if !errors.Is(err, store.ErrIdentityKeyNotFound) {
		return models.IdentityKeyPair{}, fmt.Errorf("loading identity key pair: %w", err)
	}

	if !generateIfMissing {
		return models.IdentityKeyPair{}, ErrNoIdentityKeyPair
	}

	generated, err := k.engine.GenerateIdentityKeyPair()
	if err != nil {
		log.Err(err).Msg("identity key pair generation failed")
		return models.IdentityKeyPair{}, fmt.Errorf("generating identity key pair: %w", err)
	}

	saved, err := k.identity.SaveIdentityKeyPair(ctx, generated)
	if err != nil {
		log.Err(err).Msg("persisting identity key pair failed")
		return models.IdentityKeyPair{}, fmt.Errorf("persisting identity key pair: %w", err)
	}
	log.Info().Msg("generated new identity key pair")

	return saved, nil
}

// ResetIdentityKeyPair deletes the persisted pair. The next
// GetIdentityKeyPair call with generateIfMissing regenerates it.
func (k *keyStoreService) ResetIdentityKeyPair(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := k.identity.DeleteIdentityKeyPair(ctx); err != nil {
		return fmt.Errorf("resetting identity key pair: %w", err)
	}
	log.Info().Msg("identity key pair reset")

	return nil
}
