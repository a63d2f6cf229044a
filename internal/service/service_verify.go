package service

import (
	"context"
	"fmt"

	"github.com/keybridge-io/keybridge/internal/adapter"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/models"
)

// verifyService is the concrete implementation of VerifyService.
type verifyService struct {
	vault  adapter.VaultAdapter
	keys   KeyStoreService
	teams  TeamService
	logger *logger.Logger
}

// NewVerifyService constructs a VerifyService checking accounts through the
// given vault adapter.
func NewVerifyService(vault adapter.VaultAdapter, keys KeyStoreService, teams TeamService, logger *logger.Logger) VerifyService {
	return &verifyService{
		vault:  vault,
		keys:   keys,
		teams:  teams,
		logger: logger,
	}
}

// VerifyAccount resolves the team for accountID and checks its vault
// account's lifecycle state. Adapter error variants (payment required, bad
// credentials, unknown account, inactive) pass through unwrapped so callers
// can match them with errors.Is.
func (v *verifyService) VerifyAccount(ctx context.Context, accountID string) (models.AccountStatus, error) {
	team, err := v.keys.GetTeamCredential(ctx, accountID)
	if err != nil {
		return models.AccountStatus{}, err
	}

	return v.vault.VerifyAccount(ctx, team)
}

// VerifyAllTeams checks every configured team and logs the outcome. A
// failing account never stops the sweep; only a failure to list the teams is
// returned.
func (v *verifyService) VerifyAllTeams(ctx context.Context) error {
	log := logger.FromContext(ctx)

	teams, err := v.teams.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("listing teams for verification: %w", err)
	}

	for _, team := range teams {
		status, err := v.vault.VerifyAccount(ctx, team)
		if err != nil {
			log.Warn().
				Err(err).
				Str("account_id", team.AccountID).
				Msg("account verification failed")
			continue
		}
		log.Debug().
			Str("account_id", team.AccountID).
			Str("status", status.Status).
			Msg("account verified")
	}

	return nil
}
