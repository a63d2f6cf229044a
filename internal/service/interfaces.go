package service

import (
	"context"

	"github.com/keybridge-io/keybridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ExchangeService redeems an access key for the ordered list of login
// targets the requester is entitled to.
type ExchangeService interface {
	Redeem(ctx context.Context, request models.AccessKeyRequest, requester models.Requester) ([]models.LoginTarget, error)
}

// KeyStoreService supplies key material to the rest of the system: per-team
// credentials and the install-wide identity key pair.
type KeyStoreService interface {
	GetTeamCredential(ctx context.Context, accountID string) (models.TeamCredential, error)
	GetIdentityKeyPair(ctx context.Context, generateIfMissing bool) (models.IdentityKeyPair, error)
	ResetIdentityKeyPair(ctx context.Context) error
}

// TeamService manages the team credential lifecycle: operator configuration,
// lookup, listing, and removal.
type TeamService interface {
	ConfigureTeam(ctx context.Context, accountID string, values map[string]any) (models.TeamCredential, error)
	GetTeam(ctx context.Context, accountID string) (models.TeamCredential, error)
	ListTeams(ctx context.Context) ([]models.TeamCredential, error)
	DeleteTeam(ctx context.Context, accountID string) error
}

// VerifyService checks the lifecycle state of vault accounts behind
// configured teams.
type VerifyService interface {
	VerifyAccount(ctx context.Context, accountID string) (models.AccountStatus, error)
	VerifyAllTeams(ctx context.Context) error
}

// AuthService issues and validates the requester JWTs the redemption
// middleware consumes.
type AuthService interface {
	CreateToken(ctx context.Context, requester models.Requester) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EnvelopeVerifier checks that a raw envelope object has the required shape
// and converts it to the typed model.
type EnvelopeVerifier interface {
	VerifyEnvelope(raw any) (models.Envelope, error)
}
