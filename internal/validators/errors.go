package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAccessKeyLength = errors.New("access key must be exactly 64 characters")
	ErrNoAccountID            = errors.New("no account ID provided")

	ErrEmptyEnvelope       = errors.New("envelope is empty")
	ErrEnvelopeNotMap      = errors.New("envelope is not map-shaped")
	ErrEnvelopeMissingKeys = errors.New("envelope is missing required keys")
)
