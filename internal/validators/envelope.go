package validators

import (
	"fmt"

	"github.com/keybridge-io/keybridge/models"
)

// envelope field names as they appear on the wire.
const (
	envelopeFieldIdentifier = "identifier"
	envelopeFieldSiteURL    = "siteurl"
	envelopeFieldPublicKey  = "publicKey"
	envelopeFieldNonce      = "nonce"
)

// EnvelopeValidator checks that an inbound envelope has the required shape
// before any decryption is attempted.
type EnvelopeValidator struct {
}

func NewEnvelopeValidator() *EnvelopeValidator {
	return &EnvelopeValidator{}
}

// VerifyEnvelope normalizes raw into a string-keyed map and checks that all
// four required keys (identifier, siteurl, publicKey, nonce) are present as
// non-empty strings. The envelope is rejected wholesale on the first missing
// key — there is no partial processing.
//
// This check gates both the standalone validation step and the first step of
// URL derivation; both call sites share the identical rejection behavior.
func (v *EnvelopeValidator) VerifyEnvelope(raw any) (models.Envelope, error) {
	if raw == nil {
		return models.Envelope{}, ErrEmptyEnvelope
	}

	normalized := models.NormalizeMap(raw)
	if normalized == nil {
		// Already-typed envelopes pass through unchanged.
		if env, ok := raw.(models.Envelope); ok {
			return v.verifyTyped(env)
		}
		return models.Envelope{}, ErrEnvelopeNotMap
	}
	if len(normalized) == 0 {
		return models.Envelope{}, ErrEmptyEnvelope
	}

	env := models.Envelope{}
	for _, field := range []struct {
		key string
		dst *string
	}{
		{envelopeFieldIdentifier, &env.Identifier},
		{envelopeFieldSiteURL, &env.SiteURL},
		{envelopeFieldPublicKey, &env.PublicKey},
		{envelopeFieldNonce, &env.Nonce},
	} {
		value, ok := normalized[field.key].(string)
		if !ok || value == "" {
			return models.Envelope{}, fmt.Errorf("%w: %q", ErrEnvelopeMissingKeys, field.key)
		}
		*field.dst = value
	}

	return env, nil
}

func (v *EnvelopeValidator) verifyTyped(env models.Envelope) (models.Envelope, error) {
	if env == (models.Envelope{}) {
		return models.Envelope{}, ErrEmptyEnvelope
	}
	for key, value := range map[string]string{
		envelopeFieldIdentifier: env.Identifier,
		envelopeFieldSiteURL:    env.SiteURL,
		envelopeFieldPublicKey:  env.PublicKey,
		envelopeFieldNonce:      env.Nonce,
	} {
		if value == "" {
			return models.Envelope{}, fmt.Errorf("%w: %q", ErrEnvelopeMissingKeys, key)
		}
	}
	return env, nil
}
