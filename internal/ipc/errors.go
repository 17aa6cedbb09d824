// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/service"
)

// Process-level errors that never originate in the vault service.
var (
	// ErrAgentUnreachable is returned by the client when no agent answers
	// on the socket, even after spawning one.
	ErrAgentUnreachable = errors.New("agent unreachable")
	// ErrAlreadyRunning is returned by an agent that finds another live
	// instance holding the pid lock.
	ErrAlreadyRunning = errors.New("agent already running")
	// ErrProtocol marks malformed, oversized or unknown messages.
	ErrProtocol = errors.New("protocol error")
	// ErrInternal is the fallback for errors without a dedicated code.
	ErrInternal = errors.New("internal agent error")
)

// Code is the stable wire representation of an error category.
type Code string

const (
	CodeAgentUnreachable Code = "agent_unreachable"
	CodeAlreadyRunning   Code = "already_running"
	CodeLocked           Code = "locked"
	CodeNotLoggedIn      Code = "not_logged_in"
	CodeInvalidPassword  Code = "invalid_password"
	CodeDecryptionFailed Code = "decryption_failed"
	CodeSyncFailed       Code = "sync_failed"
	CodeNotFound         Code = "not_found"
	CodeAmbiguousEntry   Code = "ambiguous_entry"
	CodeInvalidRequest   Code = "invalid_request"
	CodeProtocolError    Code = "protocol_error"
	CodeInternal         Code = "internal"
)

// codeTable is ordered: the first sentinel matched by errors.Is wins, so
// more specific categories come before broader ones.
var codeTable = []struct {
	code Code
	err  error
}{
	{CodeLocked, service.ErrLocked},
	{CodeNotLoggedIn, service.ErrNotLoggedIn},
	{CodeInvalidPassword, service.ErrInvalidPassword},
	{CodeDecryptionFailed, service.ErrDecryptionFailed},
	{CodeSyncFailed, service.ErrSyncFailed},
	{CodeNotFound, service.ErrNotFound},
	{CodeAmbiguousEntry, service.ErrAmbiguousEntry},
	{CodeInvalidRequest, service.ErrInvalidRequest},
	{CodeProtocolError, ErrProtocol},
	{CodeAgentUnreachable, ErrAgentUnreachable},
	{CodeAlreadyRunning, ErrAlreadyRunning},
	{CodeInternal, ErrInternal},
}

// CodeOf classifies err for the wire.
func CodeOf(err error) Code {
	for _, c := range codeTable {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// Sentinel returns the error a code stands for.
func (c Code) Sentinel() error {
	for _, e := range codeTable {
		if e.code == c {
			return e.err
		}
	}
	return ErrInternal
}

// RemoteError is an error reported by the agent. It unwraps to the sentinel
// of its code, so errors.Is(err, service.ErrLocked) holds on the client.
type RemoteError struct {
	Code    Code
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.Code.Sentinel()
}

// String is used in logs.
func (e *RemoteError) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
