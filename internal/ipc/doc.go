// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ipc implements the local protocol between the gopass front end and
// the gopass-agent daemon.
//
// Every connection carries exactly one request and one response. A message
// is a frame: a 4-byte big-endian length followed by a CBOR body. Request
// bodies are envelopes {"type": <variant>, "body": <variant fields>} and the
// set of variants is closed; anything else is answered with a
// protocol_error response.
//
// Errors cross the boundary as stable codes (see [Code]) and are turned back
// into sentinel errors on the client, so callers use [errors.Is] on both
// sides of the socket.
package ipc
