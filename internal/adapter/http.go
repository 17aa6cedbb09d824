package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/utils"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/go-resty/resty/v2"
)

const (
	clientID   = "cli"
	deviceName = "gopass"
	deviceType = "8"
	tokenScope = "api offline_access"
)

type httpSyncProvider struct {
	identity *utils.HTTPClient
	api      *utils.HTTPClient

	deviceID string

	logger *logger.Logger
}

// tokenResponse is the identity API's answer to /connect/token.
type tokenResponse struct {
	AccessToken    string         `json:"access_token"`
	RefreshToken   string         `json:"refresh_token"`
	Key            string         `json:"Key"`
	KDF            models.KDFType `json:"Kdf"`
	KDFIterations  uint32         `json:"KdfIterations"`
	KDFMemory      uint32         `json:"KdfMemory"`
	KDFParallelism uint8          `json:"KdfParallelism"`
}

// preloginResponse is the identity API's answer to /accounts/prelogin.
type preloginResponse struct {
	KDF            models.KDFType `json:"kdf"`
	KDFIterations  uint32         `json:"kdfIterations"`
	KDFMemory      uint32         `json:"kdfMemory"`
	KDFParallelism uint8          `json:"kdfParallelism"`
}

// NewHTTPSyncProvider constructs an HTTP/REST implementation of [SyncProvider].
// It normalises and validates both API roots and applies the request timeout
// to each underlying HTTP client.
//
// Returns an error if either URL is empty or cannot be parsed.
func NewHTTPSyncProvider(cfg config.Provider, logger *logger.Logger) (SyncProvider, error) {
	identityURL, err := normalizeBaseURL(cfg.IdentityURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity url: %w", err)
	}
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	return &httpSyncProvider{
		identity: utils.NewHTTPClient(identityURL, cfg.RequestTimeout),
		api:      utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		deviceID: utils.NewID(),
		logger:   logger.GetChildLogger(),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PreLogin implements [SyncProvider]. It POSTs the email to
// POST /accounts/prelogin on the identity API.
func (h *httpSyncProvider) PreLogin(ctx context.Context, email string) (models.KDFParams, error) {
	var result preloginResponse

	resp, err := h.identity.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		SetResult(&result).
		Post("/accounts/prelogin")
	if err != nil {
		return models.KDFParams{}, transportError("prelogin request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KDFParams{}, err
	}

	params := models.KDFParams{
		Type:        result.KDF,
		Iterations:  result.KDFIterations,
		Memory:      result.KDFMemory,
		Parallelism: result.KDFParallelism,
	}
	if params.IsZero() {
		return models.KDFParams{}, fmt.Errorf("%w: prelogin without kdf iterations", ErrInvalidResponse)
	}
	return params, nil
}

// Authenticate implements [SyncProvider]. It runs the OAuth password grant
// against POST /connect/token with the auth hash as the password.
func (h *httpSyncProvider) Authenticate(ctx context.Context, creds models.Credentials) (models.AuthContext, error) {
	auth, err := h.token(ctx, map[string]string{
		"grant_type":       "password",
		"username":         creds.Email,
		"password":         creds.AuthHash,
		"scope":            tokenScope,
		"client_id":        clientID,
		"deviceType":       deviceType,
		"deviceName":       deviceName,
		"deviceIdentifier": h.deviceID,
	})
	if err != nil {
		return models.AuthContext{}, fmt.Errorf("authenticate: %w", err)
	}
	if auth.ProtectedKey == "" {
		return models.AuthContext{}, fmt.Errorf("%w: token response without protected key", ErrInvalidResponse)
	}
	return auth, nil
}

// Refresh implements [SyncProvider] with the OAuth refresh_token grant.
func (h *httpSyncProvider) Refresh(ctx context.Context, refreshToken string) (models.AuthContext, error) {
	auth, err := h.token(ctx, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
		"client_id":     clientID,
	})
	if err != nil {
		return models.AuthContext{}, fmt.Errorf("refresh: %w", err)
	}
	if auth.RefreshToken == "" {
		auth.RefreshToken = refreshToken
	}
	return auth, nil
}

func (h *httpSyncProvider) token(ctx context.Context, form map[string]string) (models.AuthContext, error) {
	var result tokenResponse

	resp, err := h.identity.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&result).
		Post("/connect/token")
	if err != nil {
		return models.AuthContext{}, transportError("token request", err)
	}
	if err = mapTokenError(resp); err != nil {
		return models.AuthContext{}, err
	}
	if result.AccessToken == "" {
		return models.AuthContext{}, fmt.Errorf("%w: token response without access token", ErrInvalidResponse)
	}

	return models.AuthContext{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ProtectedKey: result.Key,
		KDF: models.KDFParams{
			Type:        result.KDF,
			Iterations:  result.KDFIterations,
			Memory:      result.KDFMemory,
			Parallelism: result.KDFParallelism,
		},
	}, nil
}

// FetchVault implements [SyncProvider]. It GETs /sync from the vault API.
func (h *httpSyncProvider) FetchVault(ctx context.Context, accessToken string) (models.RemoteVault, error) {
	var vault models.RemoteVault

	resp, err := h.authedRequest(ctx, accessToken).
		SetResult(&vault).
		Get("/sync")
	if err != nil {
		return models.RemoteVault{}, transportError("fetch vault request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteVault{}, err
	}

	h.logger.Debug().
		Int("entries", len(vault.Entries)).
		Msg("fetched remote vault")
	return vault, nil
}

// PushEntries implements [SyncProvider]. It POSTs the batch to
// POST /ciphers/push and returns the stored entries.
func (h *httpSyncProvider) PushEntries(ctx context.Context, accessToken string, req models.PushRequest) (models.PushResponse, error) {
	var pushed models.PushResponse

	resp, err := h.authedRequest(ctx, accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&pushed).
		Post("/ciphers/push")
	if err != nil {
		return models.PushResponse{}, transportError("push request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}
	if len(pushed.Entries) != len(req.Entries) {
		return models.PushResponse{}, fmt.Errorf("%w: pushed %d entries, provider stored %d",
			ErrInvalidResponse, len(req.Entries), len(pushed.Entries))
	}

	return pushed, nil
}

// DeleteEntries implements [SyncProvider]. It POSTs the ids to
// POST /ciphers/delete.
func (h *httpSyncProvider) DeleteEntries(ctx context.Context, accessToken string, req models.RemoveRequest) error {
	resp, err := h.authedRequest(ctx, accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/ciphers/delete")
	if err != nil {
		return transportError("delete request", err)
	}

	return mapHTTPError(resp)
}

// authedRequest returns a vault API request bound to ctx with the bearer
// token set.
func (h *httpSyncProvider) authedRequest(ctx context.Context, accessToken string) *resty.Request {
	return h.api.R().
		SetContext(ctx).
		SetAuthToken(accessToken)
}
