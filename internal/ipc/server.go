// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/utils"
)

const (
	readTimeout  = 30 * time.Second
	writeTimeout = 10 * time.Second
)

// Handler serves one decoded request. The returned result is CBOR-encoded
// into the response data; a non-nil error becomes an error response.
type Handler interface {
	Handle(ctx context.Context, req Request) (any, error)
}

// HandlerFunc adapts a function to [Handler].
type HandlerFunc func(ctx context.Context, req Request) (any, error)

// Handle implements [Handler].
func (f HandlerFunc) Handle(ctx context.Context, req Request) (any, error) {
	return f(ctx, req)
}

// Server accepts connections on a unix socket and answers one request per
// connection.
type Server struct {
	socketPath string
	handler    Handler
	logger     *logger.Logger

	mu       sync.Mutex
	listener net.Listener

	activeConnections sync.WaitGroup
}

// NewServer returns a server for socketPath. Nothing is bound until Listen.
func NewServer(socketPath string, handler Handler, log *logger.Logger) *Server {
	return &Server{socketPath: socketPath, handler: handler, logger: log}
}

// SocketPath returns the path the server binds.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Listen binds the socket. The parent directory is created with mode 0700
// and the socket itself is restricted to the owner. A stale socket file is
// removed first; callers must already hold the agent's pid lock so the
// file cannot belong to a live agent.
func (s *Server) Listen() error {
	if err := os.MkdirAll(filepath.Dir(s.socketPath), 0o700); err != nil {
		return fmt.Errorf("create socket dir: %w", err)
	}
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale socket %s: %w", s.socketPath, err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.socketPath, err)
	}
	if err = os.Chmod(s.socketPath, 0o600); err != nil {
		_ = listener.Close()
		return fmt.Errorf("restrict socket mode: %w", err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.logger.Info().Str("path", s.socketPath).Msg("socket server listening")
	return nil
}

// Serve accepts connections until ctx is cancelled or Close is called, then
// waits for in-flight requests to finish. Listen must have succeeded.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()
	if listener == nil {
		return errors.New("ipc: Serve called before Listen")
	}

	stop := context.AfterFunc(ctx, func() { _ = s.Close() })
	defer stop()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Err(err).Msg("accept failed")
			continue
		}

		s.activeConnections.Add(1)
		go func() {
			defer s.activeConnections.Done()
			s.handleConnection(ctx, conn)
		}()
	}

	s.activeConnections.Wait()
	return nil
}

// Close stops accepting and removes the socket file. It is safe to call
// more than once.
func (s *Server) Close() error {
	s.mu.Lock()
	listener := s.listener
	s.listener = nil
	s.mu.Unlock()

	if listener == nil {
		return nil
	}
	err := listener.Close()
	if rmErr := os.Remove(s.socketPath); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	return err
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	requestID := utils.NewID()
	log := &logger.Logger{Logger: s.logger.With().Str("request_id", requestID).Logger()}
	ctx = log.WithContext(ctx)

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

	body, err := ReadFrame(conn)
	if err != nil {
		log.Debug().Err(err).Msg("bad frame")
		s.writeResponse(conn, log, NewResponse(nil, fmt.Errorf("%w: %v", ErrProtocol, err)))
		return
	}

	req, err := DecodeRequest(body)
	if err != nil {
		log.Debug().Err(err).Msg("bad request")
		s.writeResponse(conn, log, NewResponse(nil, err))
		return
	}

	start := time.Now()
	result, err := s.handle(ctx, log, req)
	if err != nil {
		log.Info().Err(err).Str("type", string(req.Type())).Dur("took", time.Since(start)).Msg("request failed")
	} else {
		log.Debug().Str("type", string(req.Type())).Dur("took", time.Since(start)).Msg("request handled")
	}

	s.writeResponse(conn, log, NewResponse(result, err))
}

// handle runs the handler, turning a panic into an internal error so one
// bad request cannot take the agent down.
func (s *Server) handle(ctx context.Context, log *logger.Logger, req Request) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("type", string(req.Type())).
				Any("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			result, err = nil, ErrInternal
		}
	}()
	return s.handler.Handle(ctx, req)
}

func (s *Server) writeResponse(conn net.Conn, log *logger.Logger, resp Response) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := WriteFrame(conn, resp); err != nil {
		log.Debug().Err(err).Msg("failed to write response")
	}
}
