package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/service"
	"github.com/MKhiriev/go-pass-agent/models"
)

// ErrNoEmail is returned by Login when no account email is configured.
var ErrNoEmail = errors.New("no account email configured, run `gopass config set email <address>`")

// App issues front-end commands against the agent.
type App struct {
	email    string
	agent    Caller
	direct   Caller
	prompter Prompter
	logger   *logger.Logger
}

// New builds an App for cfg. Requests start the agent on demand, except
// lock and stop-agent, which have nothing to do without a running agent.
func New(cfg *config.StructuredConfig, prompter Prompter, log *logger.Logger) *App {
	agent := ipc.NewClient(cfg.Agent.SocketPath(), ipc.WithSpawn(Spawner(cfg.Agent.Binary)))
	return NewApp(cfg.Account.Email, agent, agent.WithoutSpawn(), prompter, log)
}

// NewApp builds an App over explicit callers. agent may start the agent;
// direct must not.
func NewApp(email string, agent, direct Caller, prompter Prompter, log *logger.Logger) *App {
	return &App{email: email, agent: agent, direct: direct, prompter: prompter, logger: log}
}

// Login authenticates with the configured email and leaves the agent
// unlocked.
func (a *App) Login(ctx context.Context) error {
	if a.email == "" {
		return ErrNoEmail
	}
	password, err := a.prompter.Password(ctx, fmt.Sprintf("Master password for %s:", a.email))
	if err != nil {
		return err
	}
	return a.agent.Call(ctx, ipc.LoginRequest{Password: password}, nil)
}

// Unlock asks for the master password unless the agent is already unlocked.
func (a *App) Unlock(ctx context.Context) error {
	status, err := a.Status(ctx)
	if err != nil {
		return err
	}
	if !status.Locked {
		return nil
	}
	return a.unlock(ctx)
}

func (a *App) unlock(ctx context.Context) error {
	password, err := a.prompter.Password(ctx, "Master password:")
	if err != nil {
		return err
	}
	err = a.agent.Call(ctx, ipc.UnlockRequest{Password: password}, nil)
	if errors.Is(err, service.ErrNotLoggedIn) {
		return fmt.Errorf("%w, run `gopass login` first", err)
	}
	return err
}

// callUnlocked sends req and, if the agent is locked, prompts for the
// master password, unlocks and sends req once more.
func (a *App) callUnlocked(ctx context.Context, req ipc.Request, result any) error {
	err := a.agent.Call(ctx, req, result)
	if !errors.Is(err, service.ErrLocked) {
		return err
	}

	a.logger.Debug().Str("request", string(req.Type())).Msg("agent is locked, unlocking")
	if err = a.unlock(ctx); err != nil {
		return err
	}
	return a.agent.Call(ctx, req, result)
}

// Sync reconciles the cache with the sync provider.
func (a *App) Sync(ctx context.Context) (ipc.SyncResult, error) {
	var stats ipc.SyncResult
	err := a.callUnlocked(ctx, ipc.SyncRequest{}, &stats)
	return stats, err
}

// List returns the entry summaries.
func (a *App) List(ctx context.Context) ([]models.EntrySummary, error) {
	var result ipc.ListResult
	if err := a.callUnlocked(ctx, ipc.ListRequest{}, &result); err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// Get returns the decrypted entry matching name and user.
func (a *App) Get(ctx context.Context, name, user string) (models.Entry, error) {
	var entry models.Entry
	err := a.callUnlocked(ctx, ipc.GetRequest{Name: name, User: user}, &entry)
	return entry, err
}

// Add stores a new entry.
func (a *App) Add(ctx context.Context, req ipc.AddRequest) (models.EntrySummary, error) {
	var summary models.EntrySummary
	err := a.callUnlocked(ctx, req, &summary)
	return summary, err
}

// Edit changes the entry matching name and user.
func (a *App) Edit(ctx context.Context, name, user string, patch models.EntryPatch) (models.EntrySummary, error) {
	var summary models.EntrySummary
	err := a.callUnlocked(ctx, ipc.EditRequest{Name: name, User: user, Patch: patch}, &summary)
	return summary, err
}

// Remove deletes the entry matching name and user.
func (a *App) Remove(ctx context.Context, name, user string) error {
	return a.callUnlocked(ctx, ipc.RemoveRequest{Name: name, User: user}, nil)
}

// Generate draws a password, storing it when req names an entry.
func (a *App) Generate(ctx context.Context, req ipc.GenerateRequest) (ipc.GenerateResult, error) {
	var result ipc.GenerateResult
	call := a.agent.Call
	if req.Name != "" {
		call = a.callUnlocked
	}
	err := call(ctx, req, &result)
	return result, err
}

// Lock discards the agent's key. No running agent means nothing is
// unlocked, which is success.
func (a *App) Lock(ctx context.Context) error {
	return ignoreUnreachable(a.direct.Call(ctx, ipc.LockRequest{}, nil))
}

// Purge deletes the local cache.
func (a *App) Purge(ctx context.Context) error {
	return a.agent.Call(ctx, ipc.PurgeRequest{}, nil)
}

// StopAgent asks a running agent to exit.
func (a *App) StopAgent(ctx context.Context) error {
	return ignoreUnreachable(a.direct.Call(ctx, ipc.QuitRequest{}, nil))
}

// Status returns the agent's state.
func (a *App) Status(ctx context.Context) (models.AgentStatus, error) {
	var status models.AgentStatus
	err := a.agent.Call(ctx, ipc.StatusRequest{}, &status)
	return status, err
}

func ignoreUnreachable(err error) error {
	if ipc.IsUnreachable(err) {
		return nil
	}
	return err
}
