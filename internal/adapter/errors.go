package adapter

import "errors"

var (
	// ErrTransport marks a network-level failure reaching the vault. The
	// original transport error is always wrapped alongside it, so callers
	// can distinguish "service unreachable" from a structured API error
	// and still inspect the cause.
	ErrTransport = errors.New("vault service unreachable")

	// ErrAuthRequired is returned when authentication is mandated by
	// configuration and no auth headers could be built (missing keys).
	ErrAuthRequired = errors.New("authentication required but no API keys available")

	// ErrSignatureInvalid maps HTTP 424 and 410: the vault rejected the
	// request signature or the stored secret is gone.
	ErrSignatureInvalid = errors.New("vault rejected request signature")

	// ErrNotFound maps HTTP 403 and 404 on generic calls.
	ErrNotFound = errors.New("not found or access forbidden")

	// ErrEmptyBody marks a 2xx response with no body where one was
	// required.
	ErrEmptyBody = errors.New("empty response body")

	// ErrMalformedResponse marks a body that is not a valid JSON object.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrAPIErrors carries the joined text of the "errors" field of a
	// structured error body.
	ErrAPIErrors = errors.New("vault returned errors")
)

// Account-verification error variants. Each maps one HTTP status to a
// distinct human-readable condition so the UI can message precisely.
var (
	ErrPaymentRequired = errors.New("vault subscription required or payment overdue")
	ErrBadCredentials  = errors.New("vault rejected the account credentials")
	ErrUnknownAccount  = errors.New("vault does not know this account")
	ErrWrongMethod     = errors.New("verification endpoint called with wrong method")
	ErrServerError     = errors.New("vault internal server error")
	ErrAccountInactive = errors.New("vault account is not active")
	ErrContactSupport  = errors.New("account error, contact support")
)
