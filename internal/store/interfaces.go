package store

import (
	"context"

	"github.com/keybridge-io/keybridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TeamRepository persists team credentials: the per-account API key pair and
// the redemption policy (approved roles, help-desk settings) attached to it.
//
// Private keys are sealed with the install's symmetric key before they touch
// the database and opened again on the way out; implementations never store
// key material in the clear.
type TeamRepository interface {
	CreateTeam(ctx context.Context, team models.TeamCredential) (models.TeamCredential, error)
	GetTeamByAccountID(ctx context.Context, accountID string) (models.TeamCredential, error)
	ListTeams(ctx context.Context) ([]models.TeamCredential, error)
	UpdateTeam(ctx context.Context, team models.TeamCredential) (models.TeamCredential, error)
	DeleteTeam(ctx context.Context, accountID string) error
}

// IdentityRepository persists the install's single identity key pair. The
// table holds at most one row; Save upserts it.
type IdentityRepository interface {
	GetIdentityKeyPair(ctx context.Context) (models.IdentityKeyPair, error)
	SaveIdentityKeyPair(ctx context.Context, pair models.IdentityKeyPair) (models.IdentityKeyPair, error)
	DeleteIdentityKeyPair(ctx context.Context) error
}

// Sealer is the subset of the crypto engine the repositories need for at-rest
// protection of stored private keys.
type Sealer interface {
	Encrypt(message string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
