// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent implements the long-lived gopass-agent process. The agent
// owns the session and the vault cache, answers IPC requests on a unix
// socket and runs the auto-lock and background sync workers.
//
// All access to the session and the cache goes through one mutex. Requests
// that touch neither (version, generate without a name) run without it.
package agent

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/service"
	"github.com/MKhiriev/go-pass-agent/internal/store"
	"github.com/MKhiriev/go-pass-agent/internal/workers"
	"github.com/MKhiriev/go-pass-agent/models"
)

// recentEvents is how many journal rows `status` returns.
const recentEvents = 10

// Agent is the daemon process object.
type Agent struct {
	cfg      config.StructuredConfig
	services *service.Services
	vaults   store.VaultStore
	journal  store.JournalRepository
	logger   *logger.Logger
	now      func() time.Time
	version  string

	mu      sync.Mutex
	session *Session
	vault   *models.VaultCache

	pid     *pidFile
	server  *ipc.Server
	workers *workers.Workers
	cancel  context.CancelFunc
	served  chan struct{}

	stopOnce sync.Once
	stopErr  error
}

// Option customizes an Agent.
type Option func(*Agent)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *Agent) { a.now = now }
}

// WithVersion sets the version reported by the version and status
// requests.
func WithVersion(version string) Option {
	return func(a *Agent) { a.version = version }
}

// New builds an agent. Nothing is opened until Start.
func New(cfg *config.StructuredConfig, storages *store.Storages, services *service.Services, logger *logger.Logger, opts ...Option) *Agent {
	a := &Agent{
		cfg:      *cfg,
		services: services,
		vaults:   storages.Vault,
		journal:  storages.Journal,
		logger:   logger,
		now:      time.Now,
		version:  "dev",
		session:  NewSession(),
		vault:    models.NewVaultCache(),
		served:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.server = ipc.NewServer(cfg.Agent.SocketPath(), a, logger)
	return a
}

// Start takes the pid lock, loads the cache, binds the socket and starts
// serving and the workers in the background. It returns
// ipc.ErrAlreadyRunning when another agent holds the lock.
func (a *Agent) Start(ctx context.Context) error {
	pid, err := acquirePIDFile(a.cfg.Agent.PIDPath())
	if err != nil {
		return err
	}

	vault, err := a.vaults.Load(ctx)
	if err != nil {
		_ = pid.release()
		return fmt.Errorf("load vault cache: %w", err)
	}

	a.mu.Lock()
	a.pid = pid
	a.vault = vault
	a.session = NewSession()
	a.mu.Unlock()

	if err = a.server.Listen(); err != nil {
		_ = pid.release()
		return err
	}

	runCtx, cancel := context.WithCancel(a.logger.WithContext(ctx))
	a.cancel = cancel

	a.workers = workers.New(workers.NewTicker("autolock", autolockInterval(a.cfg.Agent.LockTimeout), a.autolock, a.logger))
	if a.cfg.Agent.SyncEnabled() {
		a.workers.Add(workers.NewTicker("sync", a.cfg.Agent.SyncInterval, a.backgroundSync, a.logger))
	}
	a.workers.Start(runCtx)

	go func() {
		defer close(a.served)
		if serveErr := a.server.Serve(runCtx); serveErr != nil {
			a.logger.Err(serveErr).Msg("socket server stopped")
		}
	}()

	a.logger.Info().
		Str("socket", a.server.SocketPath()).
		Bool("logged_in", vault.LoggedIn()).
		Int("entries", len(vault.Live())).
		Msg("agent started")
	return nil
}

// Run starts the agent and blocks until a quit request, ctx cancellation
// or SIGINT/SIGTERM/SIGQUIT.
func (a *Agent) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := a.Start(ctx); err != nil {
		return err
	}
	return a.Wait()
}

// Shutdown asks a started agent to stop. It does not wait.
func (a *Agent) Shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
}

// Wait blocks until the agent has stopped serving, then locks the session,
// flushes the cache and releases the pid lock.
func (a *Agent) Wait() error {
	if a.workers == nil {
		return errors.New("agent: Wait called before Start")
	}
	<-a.served
	a.workers.Wait()

	a.stopOnce.Do(func() {
		a.mu.Lock()
		a.session.Lock()
		flushErr := a.services.VaultService.Flush(context.Background(), a.vault)
		a.mu.Unlock()

		a.stopErr = errors.Join(flushErr, a.pid.release())
		a.logger.Info().Err(a.stopErr).Msg("agent stopped")
	})
	return a.stopErr
}

func autolockInterval(timeout time.Duration) time.Duration {
	return min(max(timeout/4, time.Second), 30*time.Second)
}

// autolock zeroes the keys of an idle session between requests.
func (a *Agent) autolock(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.expire(ctx)
}

// backgroundSync syncs an unlocked, logged-in vault. It does not count as
// activity, so an idle session still locks on time.
func (a *Agent) backgroundSync(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.expire(ctx)
	if a.session.Locked() || !a.vault.LoggedIn() {
		return
	}

	next, stats, err := a.services.SyncService.Sync(ctx, a.session.Keys(), a.vault)
	a.record(ctx, "auto_sync", "", err)
	if next != nil {
		a.vault = next
	}
	if err != nil {
		a.logger.Warn().Err(err).Msg("background sync failed")
		return
	}
	a.logger.Info().Any("stats", stats).Msg("background sync finished")
}

// expire locks an idle session. The caller holds a.mu.
func (a *Agent) expire(ctx context.Context) {
	if !a.session.Expired(a.now(), a.cfg.Agent.LockTimeout) {
		return
	}
	a.session.Lock()
	logger.FromContext(ctx).Info().Msg("session locked after inactivity")
	a.record(ctx, "autolock", "", nil)
}
