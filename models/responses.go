package models

// RedeemResponse is the caller-facing result of one successful redemption:
// the ordered list of login targets derived from the envelopes that
// validated and decrypted cleanly.
type RedeemResponse struct {
	// LoginTargets holds one entry per successfully derived target,
	// newest grant first.
	LoginTargets []LoginTarget `json:"login_targets"`

	// Length is the total number of entries in LoginTargets. Provided
	// for convenience so the caller can validate the response without
	// iterating the slice.
	Length int `json:"length"`
}

// ErrorResponse is the JSON shape of every error the HTTP layer emits:
// a stable machine-readable code plus a human-readable message. Raw stack
// traces never cross this boundary.
type ErrorResponse struct {
	// Code is the stable machine-readable error code (see the adapter and
	// service sentinel sets).
	Code string `json:"code"`

	// Message is the human-readable description suitable for UI display.
	Message string `json:"message"`
}
