// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the cryptographic core of the redemption
// protocol: identity key-pair generation, identity-nonce signing and
// verification, authenticated crypto-box decryption of envelope payloads,
// endpoint hashing, and symmetric at-rest encryption for stored secrets.
//
// The asymmetric primitives are libsodium-compatible: envelopes are sealed
// with crypto_box (X25519-XSalsa20-Poly1305, via golang.org/x/crypto/nacl/box)
// and identity nonces are signed with Ed25519. All cross-boundary byte blobs
// are length-checked before being handed to the underlying primitive, so
// malformed input surfaces as a typed error instead of a library panic.
package crypto

import (
	"github.com/keybridge-io/keybridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Engine is the cryptographic capability the exchange service and key store
// depend on. Implementations are safe for concurrent use; all state is
// read-only after construction.
type Engine interface {
	// GenerateIdentityKeyPair produces a fresh identity key pair: a
	// Curve25519 encryption pair and an Ed25519 signing pair, all
	// components base64-encoded. Returns an error only if the OS CSPRNG
	// fails.
	GenerateIdentityKeyPair() (models.IdentityKeyPair, error)

	// CreateIdentityNonce generates a random nonce and signs it with the
	// pair's Ed25519 signing key. Both the nonce and the detached
	// signature are returned base64-encoded. Returns ErrNoIdentityKey if
	// the pair is incomplete, or ErrMalformedKey if the signing key has
	// the wrong size.
	CreateIdentityNonce(pair models.IdentityKeyPair) (models.IdentityNonce, error)

	// VerifySignature checks the detached Ed25519 signature signed over
	// the raw bytes of unsigned using the pair's verification key. Both
	// arguments are base64-encoded. Fails closed:
	//   - ErrMalformedKey if the verification key is not 32 bytes;
	//   - ErrMalformedSignature if the signature blob is not exactly the
	//     Ed25519 signature size (distinguishes a key-length bug from a
	//     tampered message);
	//   - ErrSignatureMismatch if the signature does not verify.
	VerifySignature(pair models.IdentityKeyPair, signed, unsigned string) error

	// DecryptCryptoBox opens an authenticated crypto box using the pair's
	// Curve25519 private key and the remote public key supplied by the
	// envelope itself. ciphertext, nonce, and remotePublicKey are
	// base64-encoded. Returns ErrMalformedInput for undecodable or
	// wrong-size inputs and ErrDecryptionFailed when the box runs but
	// fails to authenticate.
	DecryptCryptoBox(pair models.IdentityKeyPair, ciphertext, nonce, remotePublicKey string) (string, error)

	// Hash returns the deterministic SHA-256 hex digest over the
	// concatenation of parts. Used to derive the per-login endpoint token
	// from siteURL + decrypted identifier.
	Hash(parts ...string) string

	// Encrypt seals message with the engine's symmetric key (AES-256-GCM)
	// and returns the base64-encoded blob nonce ‖ ciphertext. The
	// round-trip through Decrypt is lossless for arbitrary UTF-8 input,
	// including the empty string.
	Encrypt(message string) (string, error)

	// Decrypt reverses Encrypt. Returns ErrMalformedInput for undecodable
	// or truncated blobs and ErrDecryptionFailed on an authentication-tag
	// mismatch.
	Decrypt(ciphertext string) (string, error)
}
