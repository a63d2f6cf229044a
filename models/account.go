package models

// AccountStatus is the decoded body of a successful account verification
// call against the remote vault.
type AccountStatus struct {
	// Status is the account lifecycle state reported by the vault.
	// Only "active" accounts may redeem access keys.
	Status string `json:"status"`

	// HasError is set by the vault when the account is in a state that
	// requires manual support intervention.
	HasError bool `json:"error"`
}

// ActiveStatus is the Status value of a fully operational vault account.
const ActiveStatus = "active"

// Active reports whether the account may be used for redemptions.
func (a AccountStatus) Active() bool {
	return a.Status == ActiveStatus && !a.HasError
}

// Requester is the authenticated caller of a redemption, extracted from the
// inbound bearer token by the HTTP layer. ID and Name are forwarded to the
// vault with every envelope request for auditing on the remote side.
type Requester struct {
	// ID is the requester's stable identifier (the token subject).
	ID string `json:"id"`

	// Name is the requester's display name.
	Name string `json:"name"`

	// Role is the requester's role, checked against the team's
	// approved-roles set before any secret is fetched.
	Role string `json:"-"`
}
