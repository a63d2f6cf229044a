package service

import (
	"github.com/keybridge-io/keybridge/internal/adapter"
	"github.com/keybridge-io/keybridge/internal/config"
	"github.com/keybridge-io/keybridge/internal/crypto"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/store"
	"github.com/keybridge-io/keybridge/internal/validators"
)

type Services struct {
	ExchangeService ExchangeService
	KeyStoreService KeyStoreService
	TeamService     TeamService
	VerifyService   VerifyService
	AuthService     AuthService
}

func NewServices(storages *store.Storages, vault adapter.VaultAdapter, engine crypto.Engine, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	keys := NewKeyStoreService(storages.TeamRepository, storages.IdentityRepository, engine, logger)
	teams := NewTeamService(storages.TeamRepository, logger)

	return &Services{
		ExchangeService: NewExchangeService(vault, keys, engine, validators.NewAccessKeyValidator(), validators.NewEnvelopeValidator(), logger),
		KeyStoreService: keys,
		TeamService:     teams,
		VerifyService:   NewVerifyService(vault, keys, teams, logger),
		AuthService:     NewAuthService(cfg.App, logger),
	}
}
