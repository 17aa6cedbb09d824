// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned when the user cancels a prompt with esc or
	// ctrl+c.
	ErrUserQuit = errors.New("cancelled by user")
	// ErrEmptyInput is returned when stdin ends before any input.
	ErrEmptyInput = errors.New("no input")
)
