// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the redemption protocol:
// structural checks on access-key requests before any network or crypto
// work happens, and the envelope shape check that gates decryption.
//
// Validators are injected into services rather than inherited, so the same
// rejection behavior is enforced at every call site that needs it.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input
// values. Implementations may perform structural validation, semantic
// checks, cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
