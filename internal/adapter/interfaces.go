// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// remote vault/account-management service.
//
// The primary abstraction is [VaultAdapter], which decouples the exchange
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewVaultHTTPAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// response bodies by handleResponse so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrTransport] for a network
// failure, [ErrSignatureInvalid] for a 424/410 vault rejection).
package adapter

import (
	"context"

	"github.com/keybridge-io/keybridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_adapter_mock.go -package=mock

// VaultAdapter defines transport-agnostic communication with the remote
// vault service. Implementations are responsible for serialisation,
// per-team authentication header management, and mapping transport-level
// errors to the sentinel values defined in this package.
type VaultAdapter interface {
	// Call performs one authenticated request against the vault API and
	// returns the decoded response body. A nil map with a nil error is
	// the 204 No Content success sentinel — callers must treat it as
	// "zero results", not as an error. Returns [ErrAuthRequired] when
	// authentication is mandated by configuration and the team carries no
	// key material to build headers from.
	Call(ctx context.Context, team models.TeamCredential, method, endpoint string, body any) (map[string]any, error)

	// SearchSecrets looks up the secret identifiers matching accessKey,
	// scoped to the team's account. A 204 response yields an empty,
	// non-nil slice. The returned order is the vault's own (oldest
	// first); reordering policy belongs to the caller.
	SearchSecrets(ctx context.Context, team models.TeamCredential, accessKey string) ([]string, error)

	// GetEnvelope fetches the envelope for one secret identifier,
	// attaching the requester identity and a freshly signed identity
	// nonce. The raw envelope object is returned undecoded; shape
	// validation belongs to the caller.
	GetEnvelope(ctx context.Context, team models.TeamCredential, secretID string, requester models.Requester, nonce models.IdentityNonce) (map[string]any, error)

	// VerifyAccount checks the lifecycle state of the team's vault
	// account. Specific HTTP statuses map to distinct error variants
	// ([ErrPaymentRequired], [ErrBadCredentials], [ErrUnknownAccount],
	// [ErrWrongMethod], [ErrServerError]); a 2xx body whose status is not
	// "active" yields [ErrAccountInactive], and a body-level error flag
	// yields [ErrContactSupport] carrying the original status code.
	VerifyAccount(ctx context.Context, team models.TeamCredential) (models.AccountStatus, error)
}
