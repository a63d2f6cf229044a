package service

import (
	"context"
	"testing"
	"time"

	"github.com/keybridge-io/keybridge/internal/config"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthSvc(t *testing.T) AuthService {
	t.Helper()
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "keybridge-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(cfg, logger.Nop())
}

func TestAuth_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthSvc(t)
	ctx := context.Background()

	requester := models.Requester{ID: "7", Name: "agent", Role: "administrator"}

	token, err := svc.CreateToken(ctx, requester)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	got := parsed.Claims.Requester()
	assert.Equal(t, requester.ID, got.ID)
	assert.Equal(t, requester.Name, got.Name)
	assert.Equal(t, requester.Role, got.Role)
}

func TestAuth_CreateToken_MissingRequesterID(t *testing.T) {
	svc := newTestAuthSvc(t)

	_, err := svc.CreateToken(context.Background(), models.Requester{Role: "administrator"})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuth_ParseToken_Garbage(t *testing.T) {
	svc := newTestAuthSvc(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuth_ParseToken_WrongIssuer(t *testing.T) {
	issuing := NewAuthService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())
	parsing := newTestAuthSvc(t)

	token, err := issuing.CreateToken(context.Background(), models.Requester{ID: "7", Role: "administrator"})
	require.NoError(t, err)

	_, err = parsing.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
