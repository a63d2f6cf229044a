package crypto

import "errors"

var (
	// ErrNoIdentityKey is returned when an operation needs the identity
	// key pair and none (or an incomplete one) is available.
	ErrNoIdentityKey = errors.New("identity key pair is not available")

	// ErrMalformedKey marks key material of the wrong size for the
	// underlying primitive.
	ErrMalformedKey = errors.New("malformed key material")

	// ErrMalformedSignature marks a signature blob whose length differs
	// from the fixed Ed25519 signature size.
	ErrMalformedSignature = errors.New("malformed signature")

	// ErrSignatureMismatch marks a well-formed signature that does not
	// verify over the given message.
	ErrSignatureMismatch = errors.New("signature mismatch")

	// ErrMalformedInput marks undecodable base64 or wrong-size nonces,
	// public keys, or ciphertext blobs.
	ErrMalformedInput = errors.New("malformed crypto input")

	// ErrDecryptionFailed marks an authenticated decryption that ran but
	// failed to authenticate (wrong key pair or tampered ciphertext).
	ErrDecryptionFailed = errors.New("decryption failed")
)
