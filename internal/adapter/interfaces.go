// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote sync provider.
//
// The primary abstraction is [SyncProvider], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPSyncProvider]) that talks to two roots: the identity API (prelogin,
// token issue and refresh) and the vault API (sync, push, delete).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrUnavailable] when the provider
// cannot be reached at all).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-agent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_provider_mock.go -package=mock

// SyncProvider defines transport-agnostic communication with the remote vault.
// Implementations are stateless with respect to tokens: the caller owns the
// access and refresh tokens (they live in the vault cache) and passes them on
// every call.
type SyncProvider interface {
	// PreLogin returns the KDF parameters the account was created with.
	// They are needed before the master key, and thus the auth hash, can be
	// derived.
	PreLogin(ctx context.Context, email string) (models.KDFParams, error)

	// Authenticate exchanges the auth hash for tokens and the protected
	// vault key. A rejected credential is reported as [ErrUnauthorized].
	Authenticate(ctx context.Context, creds models.Credentials) (models.AuthContext, error)

	// Refresh issues a new access token from refreshToken.
	Refresh(ctx context.Context, refreshToken string) (models.AuthContext, error)

	// FetchVault downloads the full remote vault snapshot.
	FetchVault(ctx context.Context, accessToken string) (models.RemoteVault, error)

	// PushEntries uploads new or modified entries and returns them as stored
	// by the provider.
	PushEntries(ctx context.Context, accessToken string, req models.PushRequest) (models.PushResponse, error)

	// DeleteEntries removes entries on the provider.
	DeleteEntries(ctx context.Context, accessToken string, req models.RemoveRequest) error
}
