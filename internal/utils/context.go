// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/keybridge-io/keybridge/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequesterCtxKey is the key used to store the authenticated requester in
// the context. Used together with GetRequesterFromContext for type-safe
// retrieval of the requester from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.RequesterCtxKey, requester)
var RequesterCtxKey = contextKey("requester")

// GetRequesterFromContext retrieves the authenticated requester from the
// context.
//
// Returns the requester and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetRequesterFromContext(ctx context.Context) (models.Requester, bool) {
	requester, ok := ctx.Value(RequesterCtxKey).(models.Requester)
	return requester, ok
}
