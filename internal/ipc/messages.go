// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/fxamacker/cbor/v2"
)

// RequestType is the wire tag of a request variant.
type RequestType string

const (
	TypeVersion  RequestType = "version"
	TypeStatus   RequestType = "status"
	TypeLogin    RequestType = "login"
	TypeUnlock   RequestType = "unlock"
	TypeLock     RequestType = "lock"
	TypeSync     RequestType = "sync"
	TypeList     RequestType = "list"
	TypeGet      RequestType = "get"
	TypeAdd      RequestType = "add"
	TypeEdit     RequestType = "edit"
	TypeRemove   RequestType = "remove"
	TypeGenerate RequestType = "generate"
	TypePurge    RequestType = "purge"
	TypeQuit     RequestType = "quit"
)

// Request is one of the request variants declared in this file. The set is
// closed: the unexported method keeps other packages from adding variants
// the agent does not know how to handle.
type Request interface {
	Type() RequestType
	isRequest()
}

type (
	VersionRequest struct{}
	StatusRequest  struct{}
	LockRequest    struct{}
	SyncRequest    struct{}
	ListRequest    struct{}
	PurgeRequest   struct{}
	QuitRequest    struct{}

	LoginRequest struct {
		Password string `cbor:"password"`
	}

	UnlockRequest struct {
		Password string `cbor:"password"`
	}

	GetRequest struct {
		Name string `cbor:"name"`
		User string `cbor:"user,omitempty"`
	}

	AddRequest struct {
		Name     string `cbor:"name"`
		User     string `cbor:"user,omitempty"`
		Password string `cbor:"password,omitempty"`
		Notes    string `cbor:"notes,omitempty"`
		Folder   string `cbor:"folder,omitempty"`
	}

	EditRequest struct {
		Name  string            `cbor:"name"`
		User  string            `cbor:"user,omitempty"`
		Patch models.EntryPatch `cbor:"patch"`
	}

	RemoveRequest struct {
		Name string `cbor:"name"`
		User string `cbor:"user,omitempty"`
	}

	// GenerateRequest generates a password. With a Name the password is
	// also stored, creating the entry or replacing its password.
	GenerateRequest struct {
		Policy models.PasswordPolicy `cbor:"policy"`
		Length int                   `cbor:"length"`
		Name   string                `cbor:"name,omitempty"`
		User   string                `cbor:"user,omitempty"`
		Folder string                `cbor:"folder,omitempty"`
	}
)

func (VersionRequest) Type() RequestType  { return TypeVersion }
func (StatusRequest) Type() RequestType   { return TypeStatus }
func (LoginRequest) Type() RequestType    { return TypeLogin }
func (UnlockRequest) Type() RequestType   { return TypeUnlock }
func (LockRequest) Type() RequestType     { return TypeLock }
func (SyncRequest) Type() RequestType     { return TypeSync }
func (ListRequest) Type() RequestType     { return TypeList }
func (GetRequest) Type() RequestType      { return TypeGet }
func (AddRequest) Type() RequestType      { return TypeAdd }
func (EditRequest) Type() RequestType     { return TypeEdit }
func (RemoveRequest) Type() RequestType   { return TypeRemove }
func (GenerateRequest) Type() RequestType { return TypeGenerate }
func (PurgeRequest) Type() RequestType    { return TypePurge }
func (QuitRequest) Type() RequestType     { return TypeQuit }

func (VersionRequest) isRequest()  {}
func (StatusRequest) isRequest()   {}
func (LoginRequest) isRequest()    {}
func (UnlockRequest) isRequest()   {}
func (LockRequest) isRequest()     {}
func (SyncRequest) isRequest()     {}
func (ListRequest) isRequest()     {}
func (GetRequest) isRequest()      {}
func (AddRequest) isRequest()      {}
func (EditRequest) isRequest()     {}
func (RemoveRequest) isRequest()   {}
func (GenerateRequest) isRequest() {}
func (PurgeRequest) isRequest()    {}
func (QuitRequest) isRequest()     {}

var requestFactories = map[RequestType]func() Request{
	TypeVersion:  func() Request { return &VersionRequest{} },
	TypeStatus:   func() Request { return &StatusRequest{} },
	TypeLogin:    func() Request { return &LoginRequest{} },
	TypeUnlock:   func() Request { return &UnlockRequest{} },
	TypeLock:     func() Request { return &LockRequest{} },
	TypeSync:     func() Request { return &SyncRequest{} },
	TypeList:     func() Request { return &ListRequest{} },
	TypeGet:      func() Request { return &GetRequest{} },
	TypeAdd:      func() Request { return &AddRequest{} },
	TypeEdit:     func() Request { return &EditRequest{} },
	TypeRemove:   func() Request { return &RemoveRequest{} },
	TypeGenerate: func() Request { return &GenerateRequest{} },
	TypePurge:    func() Request { return &PurgeRequest{} },
	TypeQuit:     func() Request { return &QuitRequest{} },
}

// Secret reports whether a request variant touches the session or cache.
// The agent serializes these; the others run without the state mutex.
func Secret(req Request) bool {
	switch r := req.(type) {
	case VersionRequest, *VersionRequest:
		return false
	case GenerateRequest:
		return r.Name != ""
	case *GenerateRequest:
		return r.Name != ""
	default:
		return true
	}
}

type envelope struct {
	Type RequestType     `cbor:"type"`
	Body cbor.RawMessage `cbor:"body,omitempty"`
}

// WriteRequest wraps req in its envelope and writes it as one frame.
func WriteRequest(w io.Writer, req Request) error {
	if req == nil {
		return errNilRequest
	}
	body, err := Marshal(req)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", req.Type(), err)
	}
	return WriteFrame(w, envelope{Type: req.Type(), Body: body})
}

// DecodeRequest parses a frame body into a request variant. The returned
// value is always the non-pointer variant type. Every failure wraps
// [ErrProtocol].
func DecodeRequest(data []byte) (Request, error) {
	var env envelope
	if err := Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %v", ErrProtocol, err)
	}

	factory, ok := requestFactories[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown request type %q", ErrProtocol, env.Type)
	}

	req := factory()
	if len(env.Body) > 0 {
		if err := Unmarshal(env.Body, req); err != nil {
			return nil, fmt.Errorf("%w: decode %s body: %v", ErrProtocol, env.Type, err)
		}
	}
	return deref(req), nil
}

func deref(req Request) Request {
	switch r := req.(type) {
	case *VersionRequest:
		return *r
	case *StatusRequest:
		return *r
	case *LoginRequest:
		return *r
	case *UnlockRequest:
		return *r
	case *LockRequest:
		return *r
	case *SyncRequest:
		return *r
	case *ListRequest:
		return *r
	case *GetRequest:
		return *r
	case *AddRequest:
		return *r
	case *EditRequest:
		return *r
	case *RemoveRequest:
		return *r
	case *GenerateRequest:
		return *r
	case *PurgeRequest:
		return *r
	case *QuitRequest:
		return *r
	}
	return req
}

// Response is the single reply on a connection.
type Response struct {
	OK    bool            `cbor:"ok"`
	Error *ErrorBody      `cbor:"error,omitempty"`
	Data  cbor.RawMessage `cbor:"data,omitempty"`
}

// ErrorBody carries a failure across the socket.
type ErrorBody struct {
	Code    Code   `cbor:"code"`
	Message string `cbor:"message"`
}

// NewResponse builds a response from a handler result.
func NewResponse(result any, err error) Response {
	if err != nil {
		return Response{Error: &ErrorBody{Code: CodeOf(err), Message: err.Error()}}
	}
	if result == nil {
		return Response{OK: true}
	}

	data, mErr := Marshal(result)
	if mErr != nil {
		return Response{Error: &ErrorBody{Code: CodeInternal, Message: "encode result: " + mErr.Error()}}
	}
	return Response{OK: true, Data: data}
}

// Err returns the error carried by r, or nil.
func (r Response) Err() error {
	if r.OK {
		return nil
	}
	if r.Error == nil {
		return &RemoteError{Code: CodeInternal, Message: "response without error body"}
	}
	return &RemoteError{Code: r.Error.Code, Message: r.Error.Message}
}

// Result payloads.
type (
	VersionResult struct {
		Version string `cbor:"version"`
		PID     int    `cbor:"pid"`
	}

	ListResult struct {
		Entries []models.EntrySummary `cbor:"entries"`
	}

	GenerateResult struct {
		Password string `cbor:"password"`
		Stored   bool   `cbor:"stored"`
	}

	SyncResult = models.SyncStats
)

var errNilRequest = errors.New("nil request")
