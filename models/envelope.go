package models

// AccessKeyLength is the exact length of a valid access key. Requests with
// any other key length are rejected before network or crypto work happens.
const AccessKeyLength = 64

// AccessKeyRequest is the ephemeral input to one redemption: the opaque
// access key pasted by a support agent and the account the key belongs to.
type AccessKeyRequest struct {
	// AccessKey is the 64-character opaque credential to redeem.
	AccessKey string `json:"access_key"`

	// AccountID identifies the team whose credentials scope the search.
	AccountID string `json:"account_id"`
}

// Envelope is the encrypted bundle describing one authorized login target,
// as returned by the remote vault.
//
// Identifier is ciphertext sealed to this install's identity key;
// PublicKey is the remote party's Curve25519 public key for this specific
// exchange (not the team's stored API key) and Nonce is the crypto-box nonce.
// SiteURL travels in plaintext. All four fields must be present or the
// envelope is rejected wholesale.
type Envelope struct {
	// Identifier is the crypto-box ciphertext of the login identifier,
	// base64-encoded.
	Identifier string `json:"identifier"`

	// SiteURL is the client site the login grant points at.
	SiteURL string `json:"siteurl"`

	// PublicKey is the remote counterpart's Curve25519 public key used to
	// seal Identifier, base64-encoded.
	PublicKey string `json:"publicKey"`

	// Nonce is the 24-byte crypto-box nonce, base64-encoded.
	Nonce string `json:"nonce"`
}

// URLParts is the derived addressing material of one login target.
type URLParts struct {
	// SiteURL is the client site, unchanged from the envelope.
	SiteURL string `json:"siteurl"`

	// LoginURL is the ready-to-use one-time login URL:
	// siteurl + "/" + endpoint + "/" + identifier.
	LoginURL string `json:"loginurl"`

	// Endpoint is the deterministic SHA-256 hex digest of
	// siteurl + identifier.
	Endpoint string `json:"endpoint"`

	// Identifier is the decrypted login identifier.
	Identifier string `json:"identifier"`
}

// LoginTarget is the final artifact of a successful redemption for one
// secret: the login URL plus its supporting metadata. It is returned
// directly to the caller and never persisted.
type LoginTarget struct {
	// ID is the secret identifier the envelope was fetched for.
	ID string `json:"id"`

	// URLParts holds the derived site/login/endpoint/identifier values.
	URLParts URLParts `json:"url_parts"`

	// Envelope is the original (still partly encrypted) envelope the
	// target was derived from, kept for diagnostics on the caller side.
	Envelope Envelope `json:"envelope"`
}
