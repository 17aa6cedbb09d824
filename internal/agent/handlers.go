package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/service"
	"github.com/MKhiriev/go-pass-agent/models"
)

// Handle implements ipc.Handler. Errors are returned to the caller as
// error responses; none of them stops the agent.
func (a *Agent) Handle(ctx context.Context, req ipc.Request) (any, error) {
	if !ipc.Secret(req) {
		return a.handleStateless(ctx, req)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.expire(ctx)

	result, entryID, err := a.dispatch(ctx, req)
	if journaled(req) {
		a.record(ctx, string(req.Type()), entryID, err)
	}
	return result, err
}

func (a *Agent) handleStateless(ctx context.Context, req ipc.Request) (any, error) {
	switch r := req.(type) {
	case ipc.VersionRequest:
		return ipc.VersionResult{Version: a.version, PID: os.Getpid()}, nil
	case ipc.GenerateRequest:
		password, err := a.services.VaultService.Generate(ctx, r.Policy, r.Length)
		if err != nil {
			return nil, err
		}
		return ipc.GenerateResult{Password: password}, nil
	default:
		return nil, fmt.Errorf("%w: %s needs the agent state", ipc.ErrInternal, req.Type())
	}
}

// dispatch serves a request that needs the session or the cache. The caller
// holds a.mu. The returned id names the entry the request touched, for the
// journal.
func (a *Agent) dispatch(ctx context.Context, req ipc.Request) (any, string, error) {
	switch r := req.(type) {
	case ipc.VersionRequest:
		result, err := a.handleStateless(ctx, r)
		return result, "", err
	case ipc.StatusRequest:
		return a.status(ctx), "", nil
	case ipc.LoginRequest:
		return nil, "", a.login(ctx, r.Password)
	case ipc.UnlockRequest:
		return nil, "", a.unlock(ctx, r.Password)
	case ipc.LockRequest:
		a.session.Lock()
		return nil, "", a.services.VaultService.Flush(ctx, a.vault)
	case ipc.SyncRequest:
		result, err := a.sync(ctx)
		return result, "", err
	case ipc.ListRequest:
		entries, err := a.services.VaultService.List(ctx, a.keys(), a.vault)
		if err != nil {
			return nil, "", err
		}
		return ipc.ListResult{Entries: entries}, "", nil
	case ipc.GetRequest:
		entry, err := a.services.VaultService.Get(ctx, a.keys(), a.vault, r.Name, r.User)
		if err != nil {
			return nil, "", err
		}
		return entry, entry.ID, nil
	case ipc.AddRequest:
		return a.add(ctx, r)
	case ipc.EditRequest:
		return a.edit(ctx, r)
	case ipc.RemoveRequest:
		return a.remove(ctx, r)
	case ipc.GenerateRequest:
		return a.generate(ctx, r)
	case ipc.PurgeRequest:
		return nil, "", a.purge(ctx)
	case ipc.QuitRequest:
		return nil, "", a.quit(ctx)
	default:
		return nil, "", fmt.Errorf("%w: unhandled request %q", ipc.ErrProtocol, req.Type())
	}
}

// keys returns the session key and counts the call as activity.
func (a *Agent) keys() *crypto.Keys {
	a.session.Touch(a.now())
	return a.session.Keys()
}

func (a *Agent) login(ctx context.Context, password string) error {
	next, keys, err := a.services.AuthService.Login(ctx, a.vault, a.cfg.Account.Email, password)
	if err != nil {
		return err
	}
	a.vault = next
	a.session.Unlock(keys, a.now())

	logger.FromContext(ctx).Info().Str("email", next.Email).Msg("logged in")
	return nil
}

func (a *Agent) unlock(ctx context.Context, password string) error {
	keys, err := a.services.AuthService.Unlock(ctx, a.vault, password)
	if err != nil {
		return err
	}
	if err = a.services.VaultService.Flush(ctx, a.vault); err != nil {
		_ = keys.Close()
		return err
	}
	a.session.Unlock(keys, a.now())
	return nil
}

func (a *Agent) sync(ctx context.Context) (ipc.SyncResult, error) {
	next, stats, err := a.services.SyncService.Sync(ctx, a.keys(), a.vault)
	if next != nil {
		a.vault = next
	}
	if err != nil {
		return ipc.SyncResult{}, err
	}
	return stats, nil
}

func (a *Agent) add(ctx context.Context, r ipc.AddRequest) (any, string, error) {
	next, entry, err := a.services.VaultService.Add(ctx, a.keys(), a.vault, models.Entry{
		Name:     r.Name,
		Username: r.User,
		Password: r.Password,
		Notes:    r.Notes,
		Folder:   r.Folder,
	})
	if err != nil {
		return nil, "", err
	}
	a.vault = next
	return entry.Summary(), entry.ID, nil
}

func (a *Agent) edit(ctx context.Context, r ipc.EditRequest) (any, string, error) {
	next, entry, err := a.services.VaultService.Edit(ctx, a.keys(), a.vault, r.Name, r.User, r.Patch)
	if err != nil {
		return nil, "", err
	}
	a.vault = next
	return entry.Summary(), entry.ID, nil
}

func (a *Agent) remove(ctx context.Context, r ipc.RemoveRequest) (any, string, error) {
	next, id, err := a.services.VaultService.Remove(ctx, a.keys(), a.vault, r.Name, r.User)
	if err != nil {
		return nil, "", err
	}
	a.vault = next
	return nil, id, nil
}

// generate stores a fresh password under r.Name, creating the entry or
// replacing its password.
func (a *Agent) generate(ctx context.Context, r ipc.GenerateRequest) (any, string, error) {
	keys := a.keys()
	if keys == nil {
		return nil, "", service.ErrLocked
	}
	password, err := a.services.VaultService.Generate(ctx, r.Policy, r.Length)
	if err != nil {
		return nil, "", err
	}

	next, entry, err := a.services.VaultService.Upsert(ctx, keys, a.vault, models.Entry{
		Name:     r.Name,
		Username: r.User,
		Password: password,
		Folder:   r.Folder,
	})
	if err != nil {
		return nil, "", err
	}
	a.vault = next
	return ipc.GenerateResult{Password: password, Stored: true}, entry.ID, nil
}

func (a *Agent) purge(ctx context.Context) error {
	next, err := a.services.VaultService.Purge(ctx)
	if err != nil {
		return err
	}
	a.session.Lock()
	a.vault = next

	if err = a.journal.Clear(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to clear journal")
	}
	return nil
}

// quit locks and flushes, then stops the agent once the response is out.
func (a *Agent) quit(ctx context.Context) error {
	a.session.Lock()
	err := a.services.VaultService.Flush(ctx, a.vault)
	a.Shutdown()
	return err
}

func (a *Agent) status(ctx context.Context) models.AgentStatus {
	st := models.AgentStatus{
		PID:       os.Getpid(),
		Version:   a.version,
		Locked:    a.session.Locked(),
		LoggedIn:  a.vault.LoggedIn(),
		Email:     a.vault.Email,
		Entries:   len(a.vault.Live()),
		Dirty:     a.vault.Dirty(),
		LastSync:  a.vault.LastSync,
		ExpiresAt: a.session.ExpiresAt(a.cfg.Agent.LockTimeout),
	}
	if st.LoggedIn {
		st.KDF = a.vault.KDF.Type.String()
	}

	recent, err := a.journal.Recent(ctx, recentEvents)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to read journal")
	}
	st.Recent = recent
	return st
}
