package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/models"
)

// identityRepository is the SQL-backed implementation of [IdentityRepository].
// The "identity_keys" table holds a single row (id = 1); Save upserts it so a
// reset always replaces the whole pair atomically.
type identityRepository struct {
	logger *logger.Logger
	db     *DB
	sealer Sealer
}

// NewIdentityRepository constructs an [IdentityRepository] backed by the
// provided database connection. Both private components are sealed at rest.
func NewIdentityRepository(db *DB, sealer Sealer, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		db:     db,
		sealer: sealer,
		logger: logger,
	}
}

// GetIdentityKeyPair retrieves the install's identity key pair. Returns
// [ErrIdentityKeyNotFound] when none has been generated yet.
func (r *identityRepository) GetIdentityKeyPair(ctx context.Context) (models.IdentityKeyPair, error) {
	log := logger.FromContext(ctx)

	var pair models.IdentityKeyPair
	err := r.db.QueryRowContext(ctx, getIdentityKeyPair).Scan(
		&pair.PublicKey, &pair.PrivateKey, &pair.SignPublicKey, &pair.SignPrivateKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.IdentityKeyPair{}, ErrIdentityKeyNotFound
		}
		log.Err(err).Str("func", "*identityRepository.GetIdentityKeyPair").Msg("error querying identity key pair")
		return models.IdentityKeyPair{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.openPair(pair)
}

// SaveIdentityKeyPair stores pair, replacing any previously persisted pair.
// The input is returned unchanged on success.
func (r *identityRepository) SaveIdentityKeyPair(ctx context.Context, pair models.IdentityKeyPair) (models.IdentityKeyPair, error) {
	log := logger.FromContext(ctx)

	sealed, err := r.sealPair(pair)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.SaveIdentityKeyPair").Msg("error sealing identity key pair")
		return models.IdentityKeyPair{}, err
	}

	_, err = r.db.ExecContext(ctx, saveIdentityKeyPair,
		sealed.PublicKey, sealed.PrivateKey, sealed.SignPublicKey, sealed.SignPrivateKey, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.SaveIdentityKeyPair").Msg("error saving identity key pair")
		return models.IdentityKeyPair{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return pair, nil
}

// DeleteIdentityKeyPair removes the persisted pair. Deleting when no pair
// exists is not an error; the end state is the same.
func (r *identityRepository) DeleteIdentityKeyPair(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteIdentityKeyPair); err != nil {
		log.Err(err).Str("func", "*identityRepository.DeleteIdentityKeyPair").Msg("error deleting identity key pair")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *identityRepository) sealPair(pair models.IdentityKeyPair) (models.IdentityKeyPair, error) {
	var err error
	if pair.PrivateKey, err = r.sealer.Encrypt(pair.PrivateKey); err != nil {
		return models.IdentityKeyPair{}, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}
	if pair.SignPrivateKey, err = r.sealer.Encrypt(pair.SignPrivateKey); err != nil {
		return models.IdentityKeyPair{}, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}
	return pair, nil
}

func (r *identityRepository) openPair(pair models.IdentityKeyPair) (models.IdentityKeyPair, error) {
	var err error
	if pair.PrivateKey, err = r.sealer.Decrypt(pair.PrivateKey); err != nil {
		return models.IdentityKeyPair{}, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}
	if pair.SignPrivateKey, err = r.sealer.Decrypt(pair.SignPrivateKey); err != nil {
		return models.IdentityKeyPair{}, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}
	return pair, nil
}
