// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/keybridge-io/keybridge/internal/adapter"
	"github.com/keybridge-io/keybridge/internal/crypto"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/mock"
	"github.com/keybridge-io/keybridge/internal/validators"
	"github.com/keybridge-io/keybridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestExchangeSvc(t *testing.T, ctrl *gomock.Controller) (
	*exchangeService,
	*mock.MockVaultAdapter,
	*mock.MockKeyStoreService,
	*mock.MockEngine,
	*mock.MockEnvelopeVerifier,
) {
	t.Helper()
	mockVault := mock.NewMockVaultAdapter(ctrl)
	mockKeys := mock.NewMockKeyStoreService(ctrl)
	mockEngine := mock.NewMockEngine(ctrl)
	mockEnvelopes := mock.NewMockEnvelopeVerifier(ctrl)

	svc := NewExchangeService(
		mockVault, mockKeys, mockEngine,
		validators.NewAccessKeyValidator(), mockEnvelopes,
		logger.Nop(),
	).(*exchangeService)

	return svc, mockVault, mockKeys, mockEngine, mockEnvelopes
}

func validRequest() models.AccessKeyRequest {
	return models.AccessKeyRequest{
		AccessKey: strings.Repeat("a", 64),
		AccountID: "42",
	}
}

func approvedTeam() models.TeamCredential {
	return models.TeamCredential{
		AccountID:     "42",
		PublicKey:     "pub",
		PrivateKey:    "priv",
		ApprovedRoles: []string{"administrator"},
	}
}

func admin() models.Requester {
	return models.Requester{ID: "1", Name: "agent", Role: "administrator"}
}

func identityPair() models.IdentityKeyPair {
	return models.IdentityKeyPair{
		PublicKey:      "enc-pub",
		PrivateKey:     "enc-priv",
		SignPublicKey:  "sign-pub",
		SignPrivateKey: "sign-priv",
	}
}

// A malformed access key must be rejected before any network call: the vault
// mock has no expectations, so any call to it fails the test.
func TestExchange_Redeem_BadAccessKeyLength_NoNetworkCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestExchangeSvc(t, ctrl)

	request := validRequest()
	request.AccessKey = strings.Repeat("a", 63)

	_, err := svc.Redeem(context.Background(), request, admin())
	require.ErrorIs(t, err, validators.ErrInvalidAccessKeyLength)
}

func TestExchange_Redeem_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys, _, _ := newTestExchangeSvc(t, ctrl)

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(models.TeamCredential{}, ErrNoAccountID)

	_, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.ErrorIs(t, err, ErrNoAccountID)
}

func TestExchange_Redeem_RoleNotApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys, _, _ := newTestExchangeSvc(t, ctrl)

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(approvedTeam(), nil)

	requester := admin()
	requester.Role = "subscriber"

	_, err := svc.Redeem(context.Background(), validRequest(), requester)
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestExchange_Redeem_SearchTransportError_Aborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockKeys, _, _ := newTestExchangeSvc(t, ctrl)

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(approvedTeam(), nil)
	mockKeys.EXPECT().GetIdentityKeyPair(gomock.Any(), true).Return(identityPair(), nil)
	mockVault.EXPECT().SearchSecrets(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, adapter.ErrTransport)

	_, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.ErrorIs(t, err, adapter.ErrTransport)
}

// A 204 search response yields an empty collection, not a transport error;
// with nothing to process the caller-facing result is ErrNoValidSecrets.
func TestExchange_Redeem_EmptySearchResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockKeys, _, _ := newTestExchangeSvc(t, ctrl)

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(approvedTeam(), nil)
	mockKeys.EXPECT().GetIdentityKeyPair(gomock.Any(), true).Return(identityPair(), nil)
	mockVault.EXPECT().SearchSecrets(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{}, nil)

	_, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.ErrorIs(t, err, ErrNoValidSecrets)
}

// Scenario from the protocol contract: two secrets match, one envelope fetch
// fails with a transport error. The batch must not abort: exactly one login
// target comes back, for the secret that succeeded.
func TestExchange_Redeem_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockKeys, mockEngine, mockEnvelopes := newTestExchangeSvc(t, ctrl)

	team := approvedTeam()
	pair := identityPair()
	nonce := models.IdentityNonce{Nonce: "n", Signed: "s"}
	rawEnvelope := map[string]any{
		"identifier": "cipher",
		"siteurl":    "https://client.example",
		"publicKey":  "remote-pub",
		"nonce":      "box-nonce",
	}
	envelope := models.Envelope{
		Identifier: "cipher",
		SiteURL:    "https://client.example",
		PublicKey:  "remote-pub",
		Nonce:      "box-nonce",
	}

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(team, nil)
	mockKeys.EXPECT().GetIdentityKeyPair(gomock.Any(), true).Return(pair, nil)
	mockVault.EXPECT().SearchSecrets(gomock.Any(), team, strings.Repeat("a", 64)).
		Return([]string{"secretA", "secretB"}, nil)

	mockEngine.EXPECT().CreateIdentityNonce(pair).Return(nonce, nil).Times(2)

	// processed newest-first: secretB first, and it fails
	mockVault.EXPECT().GetEnvelope(gomock.Any(), team, "secretB", gomock.Any(), nonce).
		Return(nil, adapter.ErrTransport)
	mockVault.EXPECT().GetEnvelope(gomock.Any(), team, "secretA", gomock.Any(), nonce).
		Return(rawEnvelope, nil)

	mockEnvelopes.EXPECT().VerifyEnvelope(rawEnvelope).Return(envelope, nil)
	mockEngine.EXPECT().DecryptCryptoBox(pair, "cipher", "box-nonce", "remote-pub").
		Return("id1", nil)
	mockEngine.EXPECT().Hash("https://client.example", "id1").Return("endpointhash")

	targets, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.NoError(t, err)
	require.Len(t, targets, 1)

	target := targets[0]
	assert.Equal(t, "secretA", target.ID)
	assert.True(t, strings.HasPrefix(target.URLParts.LoginURL, "https://client.example/"))
	assert.Equal(t, "https://client.example/endpointhash/id1", target.URLParts.LoginURL)
	assert.Equal(t, "endpointhash", target.URLParts.Endpoint)
	assert.Equal(t, "id1", target.URLParts.Identifier)
	assert.Equal(t, envelope, target.Envelope)
}

func TestExchange_Redeem_AllSecretsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockKeys, mockEngine, _ := newTestExchangeSvc(t, ctrl)

	team := approvedTeam()
	pair := identityPair()
	nonce := models.IdentityNonce{Nonce: "n", Signed: "s"}

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(team, nil)
	mockKeys.EXPECT().GetIdentityKeyPair(gomock.Any(), true).Return(pair, nil)
	mockVault.EXPECT().SearchSecrets(gomock.Any(), team, gomock.Any()).
		Return([]string{"secretA", "secretB"}, nil)

	mockEngine.EXPECT().CreateIdentityNonce(pair).Return(nonce, nil).Times(2)
	mockVault.EXPECT().GetEnvelope(gomock.Any(), team, gomock.Any(), gomock.Any(), nonce).
		Return(nil, adapter.ErrNotFound).Times(2)

	_, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.ErrorIs(t, err, ErrNoValidSecrets)
}

// A per-item validation or decryption failure skips the item; the remaining
// items still produce targets.
func TestExchange_Redeem_UndecryptableEnvelopeSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockKeys, mockEngine, mockEnvelopes := newTestExchangeSvc(t, ctrl)

	team := approvedTeam()
	pair := identityPair()
	nonce := models.IdentityNonce{Nonce: "n", Signed: "s"}
	raw := map[string]any{"identifier": "cipher"}
	envelope := models.Envelope{
		Identifier: "cipher",
		SiteURL:    "https://client.example",
		PublicKey:  "remote-pub",
		Nonce:      "box-nonce",
	}

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(team, nil)
	mockKeys.EXPECT().GetIdentityKeyPair(gomock.Any(), true).Return(pair, nil)
	mockVault.EXPECT().SearchSecrets(gomock.Any(), team, gomock.Any()).
		Return([]string{"secretA"}, nil)

	mockEngine.EXPECT().CreateIdentityNonce(pair).Return(nonce, nil)
	mockVault.EXPECT().GetEnvelope(gomock.Any(), team, "secretA", gomock.Any(), nonce).
		Return(raw, nil)
	mockEnvelopes.EXPECT().VerifyEnvelope(raw).Return(envelope, nil)
	mockEngine.EXPECT().DecryptCryptoBox(pair, "cipher", "box-nonce", "remote-pub").
		Return("", crypto.ErrDecryptionFailed)

	_, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.ErrorIs(t, err, ErrNoValidSecrets)
}

// A missing identity key pair is a global failure, not a per-item one: the
// whole request aborts as soon as it surfaces.
func TestExchange_Redeem_MissingIdentityKeyAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockKeys, mockEngine, _ := newTestExchangeSvc(t, ctrl)

	team := approvedTeam()
	pair := identityPair()

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(team, nil)
	mockKeys.EXPECT().GetIdentityKeyPair(gomock.Any(), true).Return(pair, nil)
	mockVault.EXPECT().SearchSecrets(gomock.Any(), team, gomock.Any()).
		Return([]string{"secretA", "secretB"}, nil)

	// first item already fails with the global error; no second nonce is made
	mockEngine.EXPECT().CreateIdentityNonce(pair).Return(models.IdentityNonce{}, crypto.ErrNoIdentityKey)

	_, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.ErrorIs(t, err, crypto.ErrNoIdentityKey)
}

// Processing and result order is newest-first: the vault returns oldest
// first, the service reverses before the per-secret pipeline.
func TestExchange_Redeem_NewestFirstOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, mockKeys, mockEngine, mockEnvelopes := newTestExchangeSvc(t, ctrl)

	team := approvedTeam()
	pair := identityPair()
	nonce := models.IdentityNonce{Nonce: "n", Signed: "s"}
	raw := map[string]any{"identifier": "cipher"}
	envelope := models.Envelope{
		Identifier: "cipher",
		SiteURL:    "https://client.example",
		PublicKey:  "remote-pub",
		Nonce:      "box-nonce",
	}

	mockKeys.EXPECT().GetTeamCredential(gomock.Any(), "42").Return(team, nil)
	mockKeys.EXPECT().GetIdentityKeyPair(gomock.Any(), true).Return(pair, nil)
	mockVault.EXPECT().SearchSecrets(gomock.Any(), team, gomock.Any()).
		Return([]string{"oldest", "newest"}, nil)

	mockEngine.EXPECT().CreateIdentityNonce(pair).Return(nonce, nil).Times(2)
	gomock.InOrder(
		mockVault.EXPECT().GetEnvelope(gomock.Any(), team, "newest", gomock.Any(), nonce).Return(raw, nil),
		mockVault.EXPECT().GetEnvelope(gomock.Any(), team, "oldest", gomock.Any(), nonce).Return(raw, nil),
	)
	mockEnvelopes.EXPECT().VerifyEnvelope(raw).Return(envelope, nil).Times(2)
	mockEngine.EXPECT().DecryptCryptoBox(pair, "cipher", "box-nonce", "remote-pub").
		Return("id1", nil).Times(2)
	mockEngine.EXPECT().Hash("https://client.example", "id1").Return("h").Times(2)

	targets, err := svc.Redeem(context.Background(), validRequest(), admin())
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "newest", targets[0].ID)
	assert.Equal(t, "oldest", targets[1].ID)
}

func TestNewestFirst(t *testing.T) {
	input := []string{"a", "b", "c"}

	got := newestFirst(input)

	assert.Equal(t, []string{"c", "b", "a"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, input, "input must not be modified")
	assert.Empty(t, newestFirst(nil))
}
