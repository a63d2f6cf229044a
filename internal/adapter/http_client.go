package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/utils"
	"github.com/keybridge-io/keybridge/models"
)

// tokenHeader is the secondary auth header derived from the team key pair.
const tokenHeader = "X-TL-TOKEN"

type vaultHTTPAdapter struct {
	client *resty.Client

	requireAuth bool

	logger *logger.Logger
}

// VaultClientConfig carries the transport settings of the vault adapter.
type VaultClientConfig struct {
	// BaseURL is the vault API base, e.g. "https://vault.example.com/api/v1".
	BaseURL string

	// Timeout bounds one outbound request. Retries, if desired, belong to
	// the adapter's caller.
	Timeout time.Duration

	// RequireAuth rejects calls for teams without key material instead of
	// sending unauthenticated requests.
	RequireAuth bool
}

// NewVaultHTTPAdapter constructs an HTTP/REST implementation of
// [VaultAdapter]. The base URL is normalised (trailing slash stripped) and a
// default timeout of 15s applies when none is configured.
func NewVaultHTTPAdapter(cfg VaultClientConfig, logger *logger.Logger) (VaultAdapter, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("vault adapter: empty base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &vaultHTTPAdapter{client: cli, requireAuth: cfg.RequireAuth, logger: logger}, nil
}

// Call implements [VaultAdapter]. Both auth headers are derived from the
// team's key pair: Authorization carries sha256(privateKey) as a bearer
// token and X-TL-TOKEN carries sha256(publicKey + privateKey). A transport
// failure is wrapped with [ErrTransport] while keeping the original error
// inspectable.
func (v *vaultHTTPAdapter) Call(ctx context.Context, team models.TeamCredential, method, endpoint string, body any) (map[string]any, error) {
	req := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if team.PrivateKey != "" && team.PublicKey != "" {
		req.SetHeader("Authorization", "Bearer "+utils.SHA256Hex(team.PrivateKey))
		req.SetHeader(tokenHeader, utils.SHA256Hex(team.PublicKey, team.PrivateKey))
	} else if v.requireAuth {
		return nil, fmt.Errorf("%w: account %q", ErrAuthRequired, team.AccountID)
	}

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	return handleResponse(resp)
}

// SearchSecrets implements [VaultAdapter].
func (v *vaultHTTPAdapter) SearchSecrets(ctx context.Context, team models.TeamCredential, accessKey string) ([]string, error) {
	log := logger.FromContext(ctx)

	endpoint := fmt.Sprintf("/accounts/%s/sites/", team.AccountID)
	body := map[string]any{"searchKeys": []string{accessKey}}

	decoded, err := v.Call(ctx, team, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	// 204: the access key matched nothing, which is not an error.
	if decoded == nil {
		return []string{}, nil
	}

	rawIDs, ok := decoded["sites"].([]any)
	if !ok {
		log.Error().Str("account_id", team.AccountID).Msg("search response has no sites list")
		return nil, fmt.Errorf("%w: missing sites list", ErrMalformedResponse)
	}

	secretIDs := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, ok := raw.(string)
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: non-string secret identifier", ErrMalformedResponse)
		}
		secretIDs = append(secretIDs, id)
	}

	return secretIDs, nil
}

// GetEnvelope implements [VaultAdapter].
func (v *vaultHTTPAdapter) GetEnvelope(ctx context.Context, team models.TeamCredential, secretID string, requester models.Requester, nonce models.IdentityNonce) (map[string]any, error) {
	endpoint := fmt.Sprintf("/sites/%s/%s/get-envelope", team.AccountID, secretID)
	body := map[string]any{
		"user": map[string]string{
			"id":   requester.ID,
			"name": requester.Name,
		},
		"nonce":       nonce.Nonce,
		"signedNonce": nonce.Signed,
	}

	return v.Call(ctx, team, http.MethodPost, endpoint, body)
}

// VerifyAccount implements [VaultAdapter]. Status mapping happens before
// generic body handling because the verification endpoint assigns its own
// meaning to several statuses.
func (v *vaultHTTPAdapter) VerifyAccount(ctx context.Context, team models.TeamCredential) (models.AccountStatus, error) {
	endpoint := fmt.Sprintf("/accounts/%s", team.AccountID)
	body := map[string]any{"api_endpoint": v.client.BaseURL}

	req := v.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	if team.PrivateKey != "" && team.PublicKey != "" {
		req.SetHeader("Authorization", "Bearer "+utils.SHA256Hex(team.PrivateKey))
		req.SetHeader(tokenHeader, utils.SHA256Hex(team.PublicKey, team.PrivateKey))
	} else if v.requireAuth {
		return models.AccountStatus{}, fmt.Errorf("%w: account %q", ErrAuthRequired, team.AccountID)
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		return models.AccountStatus{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	switch resp.StatusCode() {
	case http.StatusPaymentRequired:
		return models.AccountStatus{}, ErrPaymentRequired
	case http.StatusBadRequest, http.StatusForbidden:
		return models.AccountStatus{}, ErrBadCredentials
	case http.StatusNotFound:
		return models.AccountStatus{}, ErrUnknownAccount
	case http.StatusMethodNotAllowed:
		return models.AccountStatus{}, ErrWrongMethod
	case http.StatusInternalServerError:
		return models.AccountStatus{}, ErrServerError
	}

	decoded, err := handleResponse(resp)
	if err != nil {
		return models.AccountStatus{}, err
	}
	if decoded == nil {
		return models.AccountStatus{}, fmt.Errorf("%w: http %d", ErrEmptyBody, resp.StatusCode())
	}

	status := models.AccountStatus{}
	if s, ok := decoded["status"].(string); ok {
		status.Status = s
	}
	if flagged, ok := decoded["error"].(bool); ok {
		status.HasError = flagged
	}

	if status.HasError {
		return status, fmt.Errorf("%w (http %d)", ErrContactSupport, resp.StatusCode())
	}
	if status.Status != models.ActiveStatus {
		return status, fmt.Errorf("%w: status %q", ErrAccountInactive, status.Status)
	}

	return status, nil
}
