package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keybridge-io/keybridge/models"
)

func validRequest() models.AccessKeyRequest {
	return models.AccessKeyRequest{
		AccessKey: strings.Repeat("a", 64),
		AccountID: "42",
	}
}

func TestAccessKeyValidator_Valid(t *testing.T) {
	v := NewAccessKeyValidator()

	require.NoError(t, v.Validate(context.Background(), validRequest()))
}

func TestAccessKeyValidator_PointerInput(t *testing.T) {
	v := NewAccessKeyValidator()
	req := validRequest()

	require.NoError(t, v.Validate(context.Background(), &req))
}

func TestAccessKeyValidator_WrongLength(t *testing.T) {
	v := NewAccessKeyValidator()

	for _, key := range []string{"", "short", strings.Repeat("a", 63), strings.Repeat("a", 65)} {
		req := validRequest()
		req.AccessKey = key

		err := v.Validate(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidAccessKeyLength, "key length %d", len(key))
	}
}

func TestAccessKeyValidator_MissingAccountID(t *testing.T) {
	v := NewAccessKeyValidator()
	req := validRequest()
	req.AccountID = ""

	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrNoAccountID)
}

func TestAccessKeyValidator_FieldScoping(t *testing.T) {
	v := NewAccessKeyValidator()
	req := validRequest()
	req.AccountID = ""

	// only the access key is checked when scoped
	require.NoError(t, v.Validate(context.Background(), req, FieldAccessKey))
}

func TestAccessKeyValidator_UnknownField(t *testing.T) {
	v := NewAccessKeyValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), validRequest(), "nonsense"), ErrUnknownField)
}

func TestAccessKeyValidator_UnsupportedType(t *testing.T) {
	v := NewAccessKeyValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "not a request"), ErrUnsupportedType)
}
