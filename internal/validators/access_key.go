package validators

import (
	"context"

	"github.com/keybridge-io/keybridge/models"
)

const (
	FieldAccessKey = "access_key"
	FieldAccountID = "account_id"
)

// AccessKeyValidator enforces the structural rules of an access-key
// redemption request: the key must be exactly [models.AccessKeyLength]
// characters and the account id must be present. Malformed requests never
// reach the API client.
type AccessKeyValidator struct {
}

func NewAccessKeyValidator() Validator {
	return &AccessKeyValidator{}
}

func (v *AccessKeyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccessKeyRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.AccessKeyRequest:
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccessKeyValidator) validateRequest(_ context.Context, req models.AccessKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccessKey, FieldAccountID}
	}

	for _, field := range fields {
		switch field {
		case FieldAccessKey:
			if len(req.AccessKey) != models.AccessKeyLength {
				return ErrInvalidAccessKeyLength
			}
		case FieldAccountID:
			if req.AccountID == "" {
				return ErrNoAccountID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
