package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the JWT presented by a requester with convenience accessors
// for the redemption flow.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and carries the decoded [RequesterClaims]. SignedString holds the compact
// serialized form of the token (header.payload.signature) ready to be
// transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded requester claim set.
	Claims RequesterClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// RequesterClaims is the claim set carried by requester tokens: the RFC 7519
// registered claims plus the requester's display name and role. The role
// claim supplies the "current requester role" context checked against each
// team's approved-roles set during validation.
type RequesterClaims struct {
	jwt.RegisteredClaims

	// Name is the requester's display name, forwarded to the vault with
	// envelope requests.
	Name string `json:"name"`

	// Role is the requester's role (e.g. "administrator").
	Role string `json:"role"`
}

// Requester converts the claim set into the [Requester] value the exchange
// service consumes.
func (c RequesterClaims) Requester() Requester {
	return Requester{ID: c.Subject, Name: c.Name, Role: c.Role}
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
