package store

import (
	"github.com/keybridge-io/keybridge/internal/logger"
)

// Storages aggregates all repositories behind a single constructor so the
// composition root wires one value instead of each repository separately.
type Storages struct {
	TeamRepository     TeamRepository
	IdentityRepository IdentityRepository
}

func NewStorages(db *DB, sealer Sealer, log *logger.Logger) *Storages {
	return &Storages{
		TeamRepository:     NewTeamRepository(db, sealer, log),
		IdentityRepository: NewIdentityRepository(db, sealer, log),
	}
}
