package agent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-agent/internal/adapter"
	"github.com/MKhiriev/go-pass-agent/internal/config"
	"github.com/MKhiriev/go-pass-agent/internal/crypto"
	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/mock"
	"github.com/MKhiriev/go-pass-agent/internal/service"
	"github.com/MKhiriev/go-pass-agent/internal/store"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "correct horse battery staple"
	testTimeout  = time.Minute
)

var testKDF = models.KDFParams{Type: models.KDFPBKDF2, Iterations: 5000}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type testAgent struct {
	*Agent
	clock    *fakeClock
	provider *mock.MockSyncProvider
	cfg      *config.StructuredConfig
}

// tempDir stays short enough for a unix socket path.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "gpa")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

func testConfig(t *testing.T) *config.StructuredConfig {
	dir := tempDir(t)
	return &config.StructuredConfig{
		Account: config.Account{Email: testEmail},
		Agent: config.Agent{
			LockTimeout:  testTimeout,
			SyncInterval: -1,
			RuntimeDir:   filepath.Join(dir, "run"),
		},
		Storage: config.Storage{DataDir: filepath.Join(dir, "data")},
	}
}

func permissiveJournal(ctrl *gomock.Controller) *mock.MockJournalRepository {
	journal := mock.NewMockJournalRepository(ctrl)
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	journal.EXPECT().Recent(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	journal.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()
	return journal
}

func newTestAgent(t *testing.T) *testAgent {
	t.Helper()
	ctrl := gomock.NewController(t)
	return newTestAgentWith(t, ctrl, testConfig(t), permissiveJournal(ctrl))
}

func newTestAgentWith(t *testing.T, ctrl *gomock.Controller, cfg *config.StructuredConfig, journal store.JournalRepository) *testAgent {
	t.Helper()
	provider := mock.NewMockSyncProvider(ctrl)
	vaults := store.NewFileVaultStore(cfg.Storage.VaultPath(), logger.Nop())
	services := service.NewServices(vaults, provider, crypto.NewKeyChainService(), logger.Nop())
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}

	a := New(cfg, &store.Storages{Vault: vaults, Journal: journal}, services, logger.Nop(), WithClock(clock.Now), WithVersion("test"))
	return &testAgent{Agent: a, clock: clock, provider: provider, cfg: cfg}
}

func freshToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider"))
	require.NoError(t, err)
	return s
}

// expectLogin makes the provider accept testPassword for testEmail.
func (ta *testAgent) expectLogin(t *testing.T) {
	t.Helper()
	kc := crypto.NewKeyChainService()
	masterKey, err := kc.MasterKey(testPassword, testEmail, testKDF)
	require.NoError(t, err)
	vaultKey, err := kc.NewVaultKey()
	require.NoError(t, err)
	protected, err := kc.WrapVaultKey(masterKey, vaultKey)
	require.NoError(t, err)

	ta.provider.EXPECT().PreLogin(gomock.Any(), testEmail).Return(testKDF, nil)
	ta.provider.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.AuthContext{
		AccessToken:  freshToken(t),
		RefreshToken: "refresh",
		ProtectedKey: protected,
	}, nil)
}

func (ta *testAgent) login(t *testing.T) {
	t.Helper()
	ta.expectLogin(t)
	_, err := ta.Handle(context.Background(), ipc.LoginRequest{Password: testPassword})
	require.NoError(t, err)
}

func (ta *testAgent) add(t *testing.T, name, user, password string) {
	t.Helper()
	_, err := ta.Handle(context.Background(), ipc.AddRequest{Name: name, User: user, Password: password})
	require.NoError(t, err)
}

func TestAgent_LockedRejectsSecretRequests(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()

	requests := []ipc.Request{
		ipc.ListRequest{},
		ipc.GetRequest{Name: "github"},
		ipc.AddRequest{Name: "github", Password: "x"},
		ipc.EditRequest{Name: "github", Patch: models.EntryPatch{Notes: new(string)}},
		ipc.RemoveRequest{Name: "github"},
		ipc.GenerateRequest{Policy: models.PolicyAllChars, Length: 12, Name: "github"},
	}
	for _, req := range requests {
		t.Run(string(req.Type()), func(t *testing.T) {
			result, err := ta.Handle(ctx, req)
			require.ErrorIs(t, err, service.ErrLocked)
			assert.Nil(t, result)
		})
	}

	_, err := ta.Handle(ctx, ipc.SyncRequest{})
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
	_, err = ta.Handle(ctx, ipc.UnlockRequest{Password: testPassword})
	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
}

func TestAgent_LoginAddGetRoundTrip(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()
	ta.login(t)

	_, err := ta.Handle(ctx, ipc.AddRequest{Name: "github", User: "alice", Password: "s3cret", Notes: "2fa on", Folder: "work"})
	require.NoError(t, err)

	result, err := ta.Handle(ctx, ipc.GetRequest{Name: "github"})
	require.NoError(t, err)
	entry, ok := result.(models.Entry)
	require.True(t, ok)
	assert.Equal(t, "github", entry.Name)
	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, "s3cret", entry.Password)
	assert.Equal(t, "2fa on", entry.Notes)
	assert.Equal(t, "work", entry.Folder)

	raw, err := os.ReadFile(ta.cfg.Storage.VaultPath())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "s3cret")
	assert.NotContains(t, string(raw), "github")

	result, err = ta.Handle(ctx, ipc.StatusRequest{})
	require.NoError(t, err)
	status := result.(models.AgentStatus)
	assert.False(t, status.Locked)
	assert.True(t, status.LoggedIn)
	assert.Equal(t, testEmail, status.Email)
	assert.Equal(t, 1, status.Entries)
	assert.Equal(t, 1, status.Dirty)
	assert.Equal(t, "pbkdf2-sha256", status.KDF)
}

func TestAgent_SlidingTimeout(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()
	ta.login(t)

	ta.clock.Advance(50 * time.Second)
	_, err := ta.Handle(ctx, ipc.ListRequest{})
	require.NoError(t, err, "activity within the timeout")

	ta.clock.Advance(50 * time.Second)
	_, err = ta.Handle(ctx, ipc.ListRequest{})
	require.NoError(t, err, "the previous request restarted the timer")

	ta.clock.Advance(testTimeout + time.Second)
	_, err = ta.Handle(ctx, ipc.ListRequest{})
	require.ErrorIs(t, err, service.ErrLocked)

	result, err := ta.Handle(ctx, ipc.StatusRequest{})
	require.NoError(t, err)
	assert.True(t, result.(models.AgentStatus).Locked)
}

func TestAgent_StatusDoesNotExtendSession(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()
	ta.login(t)

	ta.clock.Advance(50 * time.Second)
	_, err := ta.Handle(ctx, ipc.StatusRequest{})
	require.NoError(t, err)

	ta.clock.Advance(20 * time.Second)
	_, err = ta.Handle(ctx, ipc.ListRequest{})
	assert.ErrorIs(t, err, service.ErrLocked)
}

func TestAgent_AutolockWorkerLocksIdleSession(t *testing.T) {
	ta := newTestAgent(t)
	ta.login(t)
	keys := ta.session.Keys()

	ta.autolock(context.Background())
	assert.False(t, ta.session.Locked())

	ta.clock.Advance(testTimeout + time.Second)
	ta.autolock(context.Background())
	assert.True(t, ta.session.Locked())
	assert.True(t, keys.Closed())
}

func TestAgent_UnlockCorrectAndIncorrect(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()
	ta.login(t)
	ta.add(t, "github", "", "s3cret")

	_, err := ta.Handle(ctx, ipc.LockRequest{})
	require.NoError(t, err)
	_, err = ta.Handle(ctx, ipc.GetRequest{Name: "github"})
	require.ErrorIs(t, err, service.ErrLocked)

	_, err = ta.Handle(ctx, ipc.UnlockRequest{Password: "wrong"})
	require.ErrorIs(t, err, service.ErrInvalidPassword)
	assert.True(t, ta.session.Locked())

	_, err = ta.Handle(ctx, ipc.UnlockRequest{Password: testPassword})
	require.NoError(t, err)

	result, err := ta.Handle(ctx, ipc.GetRequest{Name: "github"})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", result.(models.Entry).Password)
}

func TestAgent_EditAndRemove(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()
	ta.login(t)
	ta.add(t, "github", "alice", "old")

	password := "new"
	_, err := ta.Handle(ctx, ipc.EditRequest{Name: "github", Patch: models.EntryPatch{Password: &password}})
	require.NoError(t, err)

	result, err := ta.Handle(ctx, ipc.GetRequest{Name: "github", User: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "new", result.(models.Entry).Password)

	_, err = ta.Handle(ctx, ipc.RemoveRequest{Name: "github"})
	require.NoError(t, err)

	_, err = ta.Handle(ctx, ipc.GetRequest{Name: "github"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestAgent_GenerateStoresWhenNamed(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()

	result, err := ta.Handle(ctx, ipc.GenerateRequest{Policy: models.PolicyNumbersOnly, Length: 8})
	require.NoError(t, err, "an unnamed password needs no unlocked session")
	generated := result.(ipc.GenerateResult)
	assert.Len(t, generated.Password, 8)
	assert.False(t, generated.Stored)

	ta.login(t)
	result, err = ta.Handle(ctx, ipc.GenerateRequest{Policy: models.PolicyAllChars, Length: 20, Name: "email"})
	require.NoError(t, err)
	generated = result.(ipc.GenerateResult)
	assert.True(t, generated.Stored)

	got, err := ta.Handle(ctx, ipc.GetRequest{Name: "email"})
	require.NoError(t, err)
	assert.Equal(t, generated.Password, got.(models.Entry).Password)

	_, err = ta.Handle(ctx, ipc.GenerateRequest{Policy: models.PolicyAllChars, Length: 0, Name: "email"})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestAgent_GenerateRejectsOversizedLength(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()

	requests := []ipc.GenerateRequest{
		{Policy: models.PolicyAllChars, Length: math.MaxInt},
		{Policy: models.PolicyNumbersOnly, Length: crypto.MaxLength + 1},
		{Policy: models.PolicyDiceware, Length: 1 << 30},
		{Policy: models.PolicyNoSymbols, Length: -5},
	}
	for _, req := range requests {
		t.Run(fmt.Sprintf("%s/%d", req.Policy, req.Length), func(t *testing.T) {
			result, err := ta.Handle(ctx, req)
			assert.ErrorIs(t, err, service.ErrInvalidRequest)
			assert.Equal(t, ipc.CodeInvalidRequest, ipc.CodeOf(err))
			assert.Nil(t, result)
		})
	}

	ta.login(t)
	_, err := ta.Handle(ctx, ipc.GenerateRequest{Policy: models.PolicyAllChars, Length: math.MaxInt, Name: "email"})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	result, err := ta.Handle(ctx, ipc.VersionRequest{})
	require.NoError(t, err, "the agent keeps serving")
	assert.Equal(t, "test", result.(ipc.VersionResult).Version)
}

func TestAgent_VersionDoesNotWaitForStateMutex(t *testing.T) {
	ta := newTestAgent(t)

	ta.mu.Lock()
	defer ta.mu.Unlock()

	done := make(chan any, 1)
	go func() {
		result, _ := ta.Handle(context.Background(), ipc.VersionRequest{})
		done <- result
	}()

	select {
	case result := <-done:
		assert.Equal(t, "test", result.(ipc.VersionResult).Version)
	case <-time.After(2 * time.Second):
		t.Fatal("version blocked on the state mutex")
	}
}

func TestAgent_SyncFailureLeavesCacheUntouched(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()
	ta.login(t)
	ta.add(t, "github", "", "s3cret")

	before, err := os.ReadFile(ta.cfg.Storage.VaultPath())
	require.NoError(t, err)

	ta.provider.EXPECT().FetchVault(gomock.Any(), gomock.Any()).Return(models.RemoteVault{}, adapter.ErrUnavailable)

	_, err = ta.Handle(ctx, ipc.SyncRequest{})
	require.ErrorIs(t, err, service.ErrSyncFailed)

	after, err := os.ReadFile(ta.cfg.Storage.VaultPath())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	result, err := ta.Handle(ctx, ipc.GetRequest{Name: "github"})
	require.NoError(t, err, "the session survives a failed sync")
	assert.Equal(t, "s3cret", result.(models.Entry).Password)
}

func TestAgent_ConcurrentRequests(t *testing.T) {
	ta := newTestAgent(t)
	ctx := context.Background()
	ta.login(t)
	ta.add(t, "seed", "", "seed-password")

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				result, err := ta.Handle(ctx, ipc.GetRequest{Name: "seed"})
				if err == nil && result.(models.Entry).Password != "seed-password" {
					err = errors.New("wrong password returned")
				}
				errs <- err
				return
			}
			_, err := ta.Handle(ctx, ipc.AddRequest{Name: fmt.Sprintf("entry-%d", i), Password: "p"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	result, err := ta.Handle(ctx, ipc.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, result.(ipc.ListResult).Entries, 1+workers/2)
}

func TestAgent_JournalFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalRepository(ctrl)
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()
	journal.EXPECT().Recent(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full")).AnyTimes()

	ta := newTestAgentWith(t, ctrl, testConfig(t), journal)
	ta.login(t)

	result, err := ta.Handle(context.Background(), ipc.StatusRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.(models.AgentStatus).Recent)
}

func TestAgent_JournalRecordsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalRepository(ctrl)

	var events []models.JournalEvent
	journal.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e models.JournalEvent) error {
		events = append(events, e)
		return nil
	}).AnyTimes()

	ta := newTestAgentWith(t, ctrl, testConfig(t), journal)
	_, err := ta.Handle(context.Background(), ipc.ListRequest{})
	require.Error(t, err)
	ta.login(t)

	require.Len(t, events, 2)
	assert.Equal(t, "list", events[0].Operation)
	assert.Equal(t, models.JournalError, events[0].Result)
	assert.Equal(t, string(ipc.CodeLocked), events[0].ErrorCode)
	assert.Equal(t, "login", events[1].Operation)
	assert.Equal(t, models.JournalSuccess, events[1].Result)
	assert.Empty(t, events[1].ErrorCode)
}

func TestAgent_SecondInstanceIsRejected(t *testing.T) {
	cfg := testConfig(t)
	ctrl := gomock.NewController(t)

	first := newTestAgentWith(t, ctrl, cfg, permissiveJournal(ctrl))
	require.NoError(t, first.Start(context.Background()))
	t.Cleanup(func() {
		first.Shutdown()
		_ = first.Wait()
	})

	second := newTestAgentWith(t, ctrl, cfg, permissiveJournal(ctrl))
	err := second.Start(context.Background())
	assert.ErrorIs(t, err, ipc.ErrAlreadyRunning)
}

func TestAgent_PurgeThenRestartIsLockedAndEmpty(t *testing.T) {
	cfg := testConfig(t)
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ta := newTestAgentWith(t, ctrl, cfg, permissiveJournal(ctrl))
	require.NoError(t, ta.Start(ctx))

	client := ipc.NewClient(cfg.Agent.SocketPath())
	ta.expectLogin(t)
	require.NoError(t, client.Call(ctx, ipc.LoginRequest{Password: testPassword}, nil))
	require.NoError(t, client.Call(ctx, ipc.AddRequest{Name: "github", Password: "s3cret"}, nil))

	require.NoError(t, client.Call(ctx, ipc.PurgeRequest{}, nil))
	_, err := os.Stat(cfg.Storage.VaultPath())
	assert.True(t, os.IsNotExist(err), "purge deletes the cache file")

	require.NoError(t, client.Call(ctx, ipc.QuitRequest{}, nil))
	require.NoError(t, ta.Wait())
	_, err = os.Stat(cfg.Agent.PIDPath())
	assert.True(t, os.IsNotExist(err), "the pid file is released")

	restarted := newTestAgentWith(t, ctrl, cfg, permissiveJournal(ctrl))
	require.NoError(t, restarted.Start(ctx))
	t.Cleanup(func() {
		restarted.Shutdown()
		_ = restarted.Wait()
	})

	var status models.AgentStatus
	require.NoError(t, client.Call(ctx, ipc.StatusRequest{}, &status))
	assert.True(t, status.Locked)
	assert.False(t, status.LoggedIn)
	assert.Zero(t, status.Entries)

	err = client.Call(ctx, ipc.ListRequest{}, nil)
	assert.ErrorIs(t, err, service.ErrLocked)
}
