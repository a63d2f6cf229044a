package service

import "errors"

var (
	// ErrNoAccountID is returned when the redemption request carries no
	// account id, or the account id does not resolve to a configured team.
	ErrNoAccountID = errors.New("no team is configured for the given account id")

	// ErrInvalidRole is returned when the requester's role is not in the
	// team's approved-roles set.
	ErrInvalidRole = errors.New("requester role is not approved for this team")

	// ErrNoValidSecrets is returned when redemption reached the vault but
	// produced zero usable login targets: the search matched nothing, or
	// every matched secret failed envelope fetch, validation, or
	// decryption. Distinct from a transport error by design: "we reached
	// the server and got nothing usable" vs "we couldn't reach the server".
	ErrNoValidSecrets = errors.New("no valid secrets found for access key")

	// ErrNoIdentityKeyPair is returned when no identity key pair has been
	// generated yet and the caller did not ask for one to be generated.
	ErrNoIdentityKeyPair = errors.New("identity key pair has not been generated")

	// ErrNoTeamValues is returned when a team configuration call carries an
	// empty value set.
	ErrNoTeamValues = errors.New("no team values provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
