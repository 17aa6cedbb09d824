// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	dialTimeout         = 2 * time.Second
	responseReadTimeout = readTimeout + writeTimeout + 5*time.Second

	spawnBackoffBase = 50 * time.Millisecond
	spawnMaxRetries  = 8
)

// SpawnFunc starts an agent process in the background. It must return as
// soon as the process has been started; the client polls the socket.
type SpawnFunc func(ctx context.Context) error

// Client sends requests to the agent. Each Call opens a new connection.
type Client struct {
	socketPath string
	spawn      SpawnFunc
	backoff    func() retry.Backoff
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithSpawn makes Call start an agent with spawn when none answers.
func WithSpawn(spawn SpawnFunc) ClientOption {
	return func(c *Client) { c.spawn = spawn }
}

// WithBackoff overrides the backoff used while waiting for a spawned agent.
func WithBackoff(backoff func() retry.Backoff) ClientOption {
	return func(c *Client) { c.backoff = backoff }
}

// NewClient returns a client for the agent socket at socketPath.
func NewClient(socketPath string, opts ...ClientOption) *Client {
	c := &Client{
		socketPath: socketPath,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(spawnMaxRetries, retry.NewExponential(spawnBackoffBase))
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithoutSpawn returns a copy of c that never starts an agent. Used by
// requests that are pointless against a fresh agent, such as lock or quit.
func (c *Client) WithoutSpawn() *Client {
	cp := *c
	cp.spawn = nil
	return &cp
}

// Call sends req and decodes the response data into result (which may be
// nil). Agent-side failures are returned as *[RemoteError]; failing to reach
// any agent returns an error wrapping [ErrAgentUnreachable].
func (c *Client) Call(ctx context.Context, req Request, result any) error {
	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(responseReadTimeout))

	if err = WriteRequest(conn, req); err != nil {
		return fmt.Errorf("%w: send %s: %v", ErrAgentUnreachable, req.Type(), err)
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		_ = uc.CloseWrite()
	}

	body, err := ReadFrame(conn)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %v", ErrProtocol, req.Type(), err)
	}

	var resp Response
	if err = Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrProtocol, req.Type(), err)
	}
	if err = resp.Err(); err != nil {
		return err
	}

	if result != nil && len(resp.Data) > 0 {
		if err = Unmarshal(resp.Data, result); err != nil {
			return fmt.Errorf("%w: decode %s result: %v", ErrProtocol, req.Type(), err)
		}
	}
	return nil
}

// Running reports whether an agent answers on the socket right now.
func (c *Client) Running(ctx context.Context) bool {
	conn, err := c.dial(ctx)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

func (c *Client) connect(ctx context.Context) (net.Conn, error) {
	conn, err := c.dial(ctx)
	if err == nil {
		return conn, nil
	}
	if c.spawn == nil {
		return nil, fmt.Errorf("%w: %v", ErrAgentUnreachable, err)
	}

	if spawnErr := c.spawn(ctx); spawnErr != nil {
		return nil, fmt.Errorf("%w: start agent: %v", ErrAgentUnreachable, spawnErr)
	}

	err = retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		var dialErr error
		conn, dialErr = c.dial(ctx)
		if dialErr != nil {
			return retry.RetryableError(dialErr)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAgentUnreachable, err)
	}
	return conn, nil
}

func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// IsUnreachable reports whether err means no agent could be reached.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrAgentUnreachable)
}
