package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/store"
	"github.com/keybridge-io/keybridge/models"
)

// teamService is the concrete implementation of TeamService. It applies the
// credential model's reset semantics (allow-listed keys, defaulting,
// normalization) and upserts the result.
type teamService struct {
	teams  store.TeamRepository
	logger *logger.Logger
}

// NewTeamService constructs a TeamService backed by the given repository.
func NewTeamService(teams store.TeamRepository, logger *logger.Logger) TeamService {
	return &teamService{
		teams:  teams,
		logger: logger,
	}
}

// ConfigureTeam rebuilds the credential for accountID from values and
// persists it: created when the team is new, fully replaced otherwise.
// values go through the credential model's reset contract, so unknown keys
// are rejected with models.ErrInvalidTeamKey and approved_roles/helpdesk get
// their defaults when empty.
func (t *teamService) ConfigureTeam(ctx context.Context, accountID string, values map[string]any) (models.TeamCredential, error) {
	log := logger.FromContext(ctx)

	if accountID == "" {
		return models.TeamCredential{}, ErrNoAccountID
	}
	if len(values) == 0 {
		return models.TeamCredential{}, ErrNoTeamValues
	}

	var team models.TeamCredential
	if err := team.Reset(values); err != nil {
		log.Err(err).Str("account_id", accountID).Msg("team values rejected")
		return models.TeamCredential{}, err
	}
	// the path parameter wins over a body value
	team.AccountID = accountID

	existing, err := t.teams.GetTeamByAccountID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, store.ErrTeamNotFound) {
			return models.TeamCredential{}, fmt.Errorf("looking up team: %w", err)
		}

		created, err := t.teams.CreateTeam(ctx, team)
		if err != nil {
			log.Err(err).Str("account_id", accountID).Msg("team creation failed")
			return models.TeamCredential{}, fmt.Errorf("team creation failed: %w", err)
		}
		log.Info().Str("account_id", accountID).Msg("team configured")
		return created, nil
	}

	team.CreatedAt = existing.CreatedAt
	updated, err := t.teams.UpdateTeam(ctx, team)
	if err != nil {
		log.Err(err).Str("account_id", accountID).Msg("team update failed")
		return models.TeamCredential{}, fmt.Errorf("team update failed: %w", err)
	}
	log.Info().Str("account_id", accountID).Msg("team reconfigured")

	return updated, nil
}

// GetTeam returns the configured credential for accountID or ErrNoAccountID.
func (t *teamService) GetTeam(ctx context.Context, accountID string) (models.TeamCredential, error) {
	if accountID == "" {
		return models.TeamCredential{}, ErrNoAccountID
	}

	team, err := t.teams.GetTeamByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			return models.TeamCredential{}, ErrNoAccountID
		}
		return models.TeamCredential{}, fmt.Errorf("looking up team: %w", err)
	}

	return team, nil
}

// ListTeams returns all configured teams.
func (t *teamService) ListTeams(ctx context.Context) ([]models.TeamCredential, error) {
	teams, err := t.teams.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	return teams, nil
}

// DeleteTeam removes the credential for accountID. Returns ErrNoAccountID
// when no team is configured for it.
func (t *teamService) DeleteTeam(ctx context.Context, accountID string) error {
	log := logger.FromContext(ctx)

	if accountID == "" {
		return ErrNoAccountID
	}

	if err := t.teams.DeleteTeam(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrTeamNotFound) {
			return ErrNoAccountID
		}
		return fmt.Errorf("deleting team: %w", err)
	}
	log.Info().Str("account_id", accountID).Msg("team deleted")

	return nil
}
