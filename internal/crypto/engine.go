// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/models"
)

const (
	// identityNonceSize is the size of the random value signed as an
	// identity proof.
	identityNonceSize = 32

	// boxNonceSize is the fixed crypto_box nonce size.
	boxNonceSize = 24

	// boxKeySize is the Curve25519 key size.
	boxKeySize = 32
)

// engine is the private implementation of [Engine].
type engine struct {
	// symmetricKey is the 256-bit AES-GCM key used by Encrypt/Decrypt.
	// Derived once from the configured master secret.
	symmetricKey []byte
}

// NewEngine constructs an [Engine] whose symmetric operations are keyed by
// masterSecret. The secret is stretched to a 256-bit key with SHA-256, so
// any non-empty string works as a master secret.
func NewEngine(masterSecret string) Engine {
	key := sha256.Sum256([]byte(masterSecret))
	return &engine{symmetricKey: key[:]}
}

// GenerateIdentityKeyPair implements [Engine]. It draws both pairs from the
// OS CSPRNG and base64-encodes the raw key bytes for storage.
func (e *engine) GenerateIdentityKeyPair() (models.IdentityKeyPair, error) {
	boxPublic, boxPrivate, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return models.IdentityKeyPair{}, fmt.Errorf("generate encryption key pair: %w", err)
	}

	signPublic, signPrivate, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return models.IdentityKeyPair{}, fmt.Errorf("generate signing key pair: %w", err)
	}

	return models.IdentityKeyPair{
		PublicKey:      base64.StdEncoding.EncodeToString(boxPublic[:]),
		PrivateKey:     base64.StdEncoding.EncodeToString(boxPrivate[:]),
		SignPublicKey:  base64.StdEncoding.EncodeToString(signPublic),
		SignPrivateKey: base64.StdEncoding.EncodeToString(signPrivate),
	}, nil
}

// CreateIdentityNonce implements [Engine]. The nonce is 32 random bytes; the
// signature is a detached Ed25519 signature over the raw nonce bytes.
func (e *engine) CreateIdentityNonce(pair models.IdentityKeyPair) (models.IdentityNonce, error) {
	if pair.SignPrivateKey == "" {
		return models.IdentityNonce{}, ErrNoIdentityKey
	}

	signKey, err := base64.StdEncoding.DecodeString(pair.SignPrivateKey)
	if err != nil {
		return models.IdentityNonce{}, fmt.Errorf("%w: decode signing key: %v", ErrMalformedKey, err)
	}
	if len(signKey) != ed25519.PrivateKeySize {
		return models.IdentityNonce{}, fmt.Errorf("%w: signing key is %d bytes, want %d", ErrMalformedKey, len(signKey), ed25519.PrivateKeySize)
	}

	nonce := make([]byte, identityNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.IdentityNonce{}, fmt.Errorf("generate identity nonce: %w", err)
	}

	signature := ed25519.Sign(ed25519.PrivateKey(signKey), nonce)

	return models.IdentityNonce{
		Nonce:  base64.StdEncoding.EncodeToString(nonce),
		Signed: base64.StdEncoding.EncodeToString(signature),
	}, nil
}

// VerifySignature implements [Engine]. It fails closed: every malformed
// input yields a typed error and only a well-formed signature that covers
// unsigned verifies.
func (e *engine) VerifySignature(pair models.IdentityKeyPair, signed, unsigned string) error {
	if pair.SignPublicKey == "" {
		return ErrNoIdentityKey
	}

	verifyKey, err := base64.StdEncoding.DecodeString(pair.SignPublicKey)
	if err != nil {
		return fmt.Errorf("%w: decode verification key: %v", ErrMalformedKey, err)
	}
	if len(verifyKey) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: verification key is %d bytes, want %d", ErrMalformedKey, len(verifyKey), ed25519.PublicKeySize)
	}

	signature, err := base64.StdEncoding.DecodeString(signed)
	if err != nil {
		return fmt.Errorf("%w: decode signature: %v", ErrMalformedSignature, err)
	}
	// The size check distinguishes a truncated or mis-assembled signature
	// blob from a signature that simply does not match the message.
	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("%w: signature is %d bytes, want %d", ErrMalformedSignature, len(signature), ed25519.SignatureSize)
	}

	message, err := base64.StdEncoding.DecodeString(unsigned)
	if err != nil {
		return fmt.Errorf("%w: decode message: %v", ErrMalformedInput, err)
	}

	if !ed25519.Verify(ed25519.PublicKey(verifyKey), message, signature) {
		return ErrSignatureMismatch
	}

	return nil
}

// DecryptCryptoBox implements [Engine]. The remote public key comes from the
// envelope itself — it is the counterpart used for this specific exchange,
// not the team's stored API key.
func (e *engine) DecryptCryptoBox(pair models.IdentityKeyPair, ciphertext, nonce, remotePublicKey string) (string, error) {
	if pair.PrivateKey == "" {
		return "", ErrNoIdentityKey
	}

	privateKey, err := decodeBoxKey(pair.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("%w: private key: %v", ErrMalformedKey, err)
	}

	remoteKey, err := decodeBoxKey(remotePublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: remote public key: %v", ErrMalformedInput, err)
	}

	nonceBytes, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return "", fmt.Errorf("%w: decode nonce: %v", ErrMalformedInput, err)
	}
	if len(nonceBytes) != boxNonceSize {
		return "", fmt.Errorf("%w: nonce is %d bytes, want %d", ErrMalformedInput, len(nonceBytes), boxNonceSize)
	}
	var boxNonce [boxNonceSize]byte
	copy(boxNonce[:], nonceBytes)

	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedInput, err)
	}

	plaintext, ok := box.Open(nil, sealed, &boxNonce, remoteKey, privateKey)
	if !ok {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// Hash implements [Engine].
func (e *engine) Hash(parts ...string) string {
	return utils.SHA256Hex(parts...)
}

// Encrypt implements [Engine]. The output blob is nonce (12 bytes) ‖
// ciphertext, base64-encoded, mirroring the at-rest format used for stored
// secrets elsewhere in the broker.
func (e *engine) Encrypt(message string) (string, error) {
	block, err := aes.NewCipher(e.symmetricKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(message), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// Decrypt implements [Engine].
func (e *engine) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrMalformedInput, err)
	}

	block, err := aes.NewCipher(e.symmetricKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrMalformedInput)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

// decodeBoxKey decodes a base64 Curve25519 key into the fixed-size array
// form the nacl primitives expect.
func decodeBoxKey(encoded string) (*[boxKeySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(raw) != boxKeySize {
		return nil, fmt.Errorf("key is %d bytes, want %d", len(raw), boxKeySize)
	}

	var key [boxKeySize]byte
	copy(key[:], raw)
	return &key, nil
}
