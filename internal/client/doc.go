// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the gopass front end's view of the agent. It turns each
// command into one typed IPC request, starts the agent when none is
// running, and asks for the master password when the agent reports that it
// is locked.
package client
