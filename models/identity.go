// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IdentityKeyPair is the process-wide identity key material: a Curve25519
// encryption pair used to open envelope crypto boxes and an Ed25519 signing
// pair used to sign identity nonces. All four values are base64-encoded raw
// key bytes.
//
// The pair is generated lazily on first use and then stays stable for the
// life of the install. An explicit reset deletes the stored pair so the next
// use regenerates it.
type IdentityKeyPair struct {
	// PublicKey is the Curve25519 public key (base64, 32 bytes raw).
	// Sent to the remote vault so that envelopes can be sealed to this
	// install.
	PublicKey string `json:"public_key"`

	// PrivateKey is the Curve25519 private key (base64, 32 bytes raw).
	// Never serialized.
	PrivateKey string `json:"-"`

	// SignPublicKey is the Ed25519 verification key (base64, 32 bytes raw).
	SignPublicKey string `json:"sign_public_key"`

	// SignPrivateKey is the Ed25519 signing key (base64, 64 bytes raw).
	// Never serialized.
	SignPrivateKey string `json:"-"`
}

// TableName returns the name of the database table
// associated with the IdentityKeyPair model.
func (k IdentityKeyPair) TableName() string {
	return "identity_keys"
}

// Complete reports whether all four key components are present.
func (k IdentityKeyPair) Complete() bool {
	return k.PublicKey != "" && k.PrivateKey != "" &&
		k.SignPublicKey != "" && k.SignPrivateKey != ""
}

// IdentityNonce is a freshly generated random value signed with the install's
// identity signing key. It proves to the remote vault that an envelope
// request originates from the install that owns the registered public key.
type IdentityNonce struct {
	// Nonce is the random value, base64-encoded.
	Nonce string `json:"nonce"`

	// Signed is the Ed25519 signature over the raw nonce bytes,
	// base64-encoded.
	Signed string `json:"signedNonce"`
}
