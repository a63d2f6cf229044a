package service

import (
	"context"
	"errors"
	"testing"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/mock"
	"github.com/keybridge-io/keybridge/internal/store"
	"github.com/keybridge-io/keybridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestKeyStoreSvc(t *testing.T, ctrl *gomock.Controller) (
	*keyStoreService,
	*mock.MockTeamRepository,
	*mock.MockIdentityRepository,
	*mock.MockEngine,
) {
	t.Helper()
	mockTeams := mock.NewMockTeamRepository(ctrl)
	mockIdentity := mock.NewMockIdentityRepository(ctrl)
	mockEngine := mock.NewMockEngine(ctrl)

	svc := NewKeyStoreService(mockTeams, mockIdentity, mockEngine, logger.Nop()).(*keyStoreService)

	return svc, mockTeams, mockIdentity, mockEngine
}

func TestKeyStore_GetTeamCredential_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTeams, _, _ := newTestKeyStoreSvc(t, ctrl)

	want := models.TeamCredential{AccountID: "42", PublicKey: "pub", PrivateKey: "priv"}
	mockTeams.EXPECT().GetTeamByAccountID(gomock.Any(), "42").Return(want, nil)

	got, err := svc.GetTeamCredential(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKeyStore_GetTeamCredential_EmptyAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestKeyStoreSvc(t, ctrl)

	_, err := svc.GetTeamCredential(context.Background(), "")
	require.ErrorIs(t, err, ErrNoAccountID)
}

func TestKeyStore_GetTeamCredential_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockTeams, _, _ := newTestKeyStoreSvc(t, ctrl)

	mockTeams.EXPECT().GetTeamByAccountID(gomock.Any(), "42").
		Return(models.TeamCredential{}, store.ErrTeamNotFound)

	_, err := svc.GetTeamCredential(context.Background(), "42")
	require.ErrorIs(t, err, ErrNoAccountID)
}

func TestKeyStore_GetIdentityKeyPair_Existing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIdentity, _ := newTestKeyStoreSvc(t, ctrl)

	want := identityPair()
	mockIdentity.EXPECT().GetIdentityKeyPair(gomock.Any()).Return(want, nil)

	got, err := svc.GetIdentityKeyPair(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// Without generateIfMissing the call is read-only: asking twice returns the
// same outcome both times and never saves anything.
func TestKeyStore_GetIdentityKeyPair_MissingWithoutGeneration_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIdentity, _ := newTestKeyStoreSvc(t, ctrl)

	mockIdentity.EXPECT().GetIdentityKeyPair(gomock.Any()).
		Return(models.IdentityKeyPair{}, store.ErrIdentityKeyNotFound).Times(2)

	first, errFirst := svc.GetIdentityKeyPair(context.Background(), false)
	second, errSecond := svc.GetIdentityKeyPair(context.Background(), false)

	require.ErrorIs(t, errFirst, ErrNoIdentityKeyPair)
	require.ErrorIs(t, errSecond, ErrNoIdentityKeyPair)
	assert.Equal(t, first, second)
}

func TestKeyStore_GetIdentityKeyPair_GeneratesWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIdentity, mockEngine := newTestKeyStoreSvc(t, ctrl)

	generated := identityPair()

	gomock.InOrder(
		mockIdentity.EXPECT().GetIdentityKeyPair(gomock.Any()).
			Return(models.IdentityKeyPair{}, store.ErrIdentityKeyNotFound),
		mockEngine.EXPECT().GenerateIdentityKeyPair().Return(generated, nil),
		mockIdentity.EXPECT().SaveIdentityKeyPair(gomock.Any(), generated).Return(generated, nil),
	)

	got, err := svc.GetIdentityKeyPair(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, generated, got)
}

func TestKeyStore_GetIdentityKeyPair_GenerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIdentity, mockEngine := newTestKeyStoreSvc(t, ctrl)

	genErr := errors.New("entropy source failed")

	mockIdentity.EXPECT().GetIdentityKeyPair(gomock.Any()).
		Return(models.IdentityKeyPair{}, store.ErrIdentityKeyNotFound)
	mockEngine.EXPECT().GenerateIdentityKeyPair().Return(models.IdentityKeyPair{}, genErr)

	_, err := svc.GetIdentityKeyPair(context.Background(), true)
	require.ErrorIs(t, err, genErr)
}

func TestKeyStore_ResetIdentityKeyPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIdentity, _ := newTestKeyStoreSvc(t, ctrl)

	mockIdentity.EXPECT().DeleteIdentityKeyPair(gomock.Any()).Return(nil)

	require.NoError(t, svc.ResetIdentityKeyPair(context.Background()))
}
