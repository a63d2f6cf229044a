// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/models"
)

// teamRepository is the SQL-backed implementation of [TeamRepository].
// It handles team credential storage against the "teams" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type teamRepository struct {
	logger *logger.Logger
	db     *DB
	sealer Sealer
}

// NewTeamRepository constructs a [TeamRepository] backed by the provided
// database connection. Private API keys pass through sealer before they are
// written and after they are read.
func NewTeamRepository(db *DB, sealer Sealer, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{
		db:     db,
		sealer: sealer,
		logger: logger,
	}
}

// teamRow is the database representation of a team credential: list and map
// fields marshalled to JSON text, the private key sealed.
type teamRow struct {
	AccountID        string
	PublicKey        string
	PrivateKey       string
	ApprovedRoles    string
	Helpdesks        string
	HelpdeskSettings string
	CreatedAt        time.Time
}

// CreateTeam persists a new team credential and returns the stored
// representation with CreatedAt populated.
//
// Error handling:
//   - unique-constraint violation on account_id → [ErrTeamAlreadyExists].
//   - At-rest sealing failure → wrapped [ErrSealingKey].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *teamRepository) CreateTeam(ctx context.Context, team models.TeamCredential) (models.TeamCredential, error) {
	log := logger.FromContext(ctx)

	team.CreatedAt = time.Now().UTC()
	row, err := r.sealTeam(team)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Msg("error sealing team for storage")
		return models.TeamCredential{}, err
	}

	_, err = r.db.ExecContext(ctx, createTeam,
		row.AccountID, row.PublicKey, row.PrivateKey,
		row.ApprovedRoles, row.Helpdesks, row.HelpdeskSettings, row.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.CreateTeam").Msg("error saving team")

		if uniqueViolation(err) {
			return models.TeamCredential{}, ErrTeamAlreadyExists
		}
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return team, nil
}

// GetTeamByAccountID retrieves the team credential for the given vault
// account. Returns [ErrTeamNotFound] when no team is configured for it.
func (r *teamRepository) GetTeamByAccountID(ctx context.Context, accountID string) (models.TeamCredential, error) {
	log := logger.FromContext(ctx)

	var row teamRow
	err := r.db.QueryRowContext(ctx, getTeamByAccountID, accountID).Scan(
		&row.AccountID, &row.PublicKey, &row.PrivateKey,
		&row.ApprovedRoles, &row.Helpdesks, &row.HelpdeskSettings, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TeamCredential{}, ErrTeamNotFound
		}
		log.Err(err).Str("func", "*teamRepository.GetTeamByAccountID").Msg("error querying team")
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.openTeam(row)
}

// ListTeams returns all configured teams ordered by creation time.
func (r *teamRepository) ListTeams(ctx context.Context) ([]models.TeamCredential, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTeams)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.ListTeams").Msg("error querying teams")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var teams []models.TeamCredential
	for rows.Next() {
		var row teamRow
		if err := rows.Scan(
			&row.AccountID, &row.PublicKey, &row.PrivateKey,
			&row.ApprovedRoles, &row.Helpdesks, &row.HelpdeskSettings, &row.CreatedAt); err != nil {
			log.Err(err).Str("func", "*teamRepository.ListTeams").Msg("error scanning team row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		team, err := r.openTeam(row)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return teams, nil
}

// UpdateTeam replaces the stored credential for team's account ID with the
// provided values. Returns [ErrTeamNotFound] when the team does not exist.
func (r *teamRepository) UpdateTeam(ctx context.Context, team models.TeamCredential) (models.TeamCredential, error) {
	log := logger.FromContext(ctx)

	row, err := r.sealTeam(team)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.UpdateTeam").Msg("error sealing team for storage")
		return models.TeamCredential{}, err
	}

	query, args, err := buildTeamUpdateQuery(row)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.UpdateTeam").Msg("error building update query")
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.UpdateTeam").Msg("error updating team")
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.TeamCredential{}, ErrTeamNotFound
	}

	return r.GetTeamByAccountID(ctx, team.AccountID)
}

// DeleteTeam removes the team credential for the given vault account.
// Returns [ErrTeamNotFound] when no team is configured for it.
func (r *teamRepository) DeleteTeam(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTeam, accountID)
	if err != nil {
		log.Err(err).Str("func", "*teamRepository.DeleteTeam").Msg("error deleting team")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// sealTeam converts a credential to its database representation: slices and
// the settings map become JSON text, the private key is sealed.
func (r *teamRepository) sealTeam(team models.TeamCredential) (teamRow, error) {
	sealedKey, err := r.sealer.Encrypt(team.PrivateKey)
	if err != nil {
		return teamRow{}, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}

	roles, err := json.Marshal(team.ApprovedRoles)
	if err != nil {
		return teamRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	helpdesks, err := json.Marshal(team.Helpdesks)
	if err != nil {
		return teamRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings := team.HelpdeskSettings
	if settings == nil {
		settings = map[string]any{}
	}
	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return teamRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return teamRow{
		AccountID:        team.AccountID,
		PublicKey:        team.PublicKey,
		PrivateKey:       sealedKey,
		ApprovedRoles:    string(roles),
		Helpdesks:        string(helpdesks),
		HelpdeskSettings: string(settingsJSON),
		CreatedAt:        team.CreatedAt,
	}, nil
}

// openTeam reverses sealTeam.
func (r *teamRepository) openTeam(row teamRow) (models.TeamCredential, error) {
	privateKey, err := r.sealer.Decrypt(row.PrivateKey)
	if err != nil {
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}

	team := models.TeamCredential{
		AccountID:  row.AccountID,
		PublicKey:  row.PublicKey,
		PrivateKey: privateKey,
		CreatedAt:  row.CreatedAt,
	}

	if err := json.Unmarshal([]byte(row.ApprovedRoles), &team.ApprovedRoles); err != nil {
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal([]byte(row.Helpdesks), &team.Helpdesks); err != nil {
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal([]byte(row.HelpdeskSettings), &team.HelpdeskSettings); err != nil {
		return models.TeamCredential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if len(team.HelpdeskSettings) == 0 {
		team.HelpdeskSettings = nil
	}

	return team, nil
}
