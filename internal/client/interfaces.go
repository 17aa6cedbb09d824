// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock -exclude_interfaces=Caller

// Caller sends one request to the agent. It is implemented by *ipc.Client.
type Caller interface {
	Call(ctx context.Context, req ipc.Request, result any) error
}

// Prompter asks the user for the master password. It is implemented by
// *tui.Prompter.
type Prompter interface {
	Password(ctx context.Context, prompt string) (string, error)
}
