// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/mock"
	"github.com/keybridge-io/keybridge/internal/service"
	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/models"
)

// testServices bundles the gomock service doubles used by handler tests.
type testServices struct {
	exchange *mock.MockExchangeService
	keys     *mock.MockKeyStoreService
	teams    *mock.MockTeamService
	verify   *mock.MockVerifyService
	auth     *mock.MockAuthService
}

// newTestHandler builds a Handler over mocked services and a nop logger.
func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svcs := &testServices{
		exchange: mock.NewMockExchangeService(ctrl),
		keys:     mock.NewMockKeyStoreService(ctrl),
		teams:    mock.NewMockTeamService(ctrl),
		verify:   mock.NewMockVerifyService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
	}

	h := NewHandler(&service.Services{
		ExchangeService: svcs.exchange,
		KeyStoreService: svcs.keys,
		TeamService:     svcs.teams,
		VerifyService:   svcs.verify,
		AuthService:     svcs.auth,
	}, logger.Nop())

	return h, svcs
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace-id middleware that normally does this.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withRequester stores an authenticated requester in the request context,
// standing in for the auth middleware.
func withRequester(r *http.Request, requester models.Requester) *http.Request {
	ctx := context.WithValue(r.Context(), utils.RequesterCtxKey, requester)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context so the
// handler can be exercised without a full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func testRequester() models.Requester {
	return models.Requester{ID: "42", Name: "Alice Agent", Role: "administrator"}
}

func execute(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, r)
	return rec
}
