package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/MKhiriev/go-pass-agent/internal/logger"
	"github.com/MKhiriev/go-pass-agent/internal/service"
	"github.com/MKhiriev/go-pass-agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	runtimeDir string
	configPath string
}

// isolate points every path the front end touches at fresh temp dirs.
func isolate(t *testing.T) testEnv {
	t.Helper()
	root, err := os.MkdirTemp("", "gpm")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(root) })

	env := testEnv{
		runtimeDir: filepath.Join(root, "run"),
		configPath: filepath.Join(root, "config", "config.json"),
	}
	t.Setenv("GOPASS_CONFIG", env.configPath)
	t.Setenv("GOPASS_AGENT_RUNTIME_DIR", env.runtimeDir)
	t.Setenv("GOPASS_STORAGE_DATA_DIR", filepath.Join(root, "data"))
	t.Setenv("GOPASS_AGENT_BINARY", filepath.Join(root, "no-such-agent"))
	t.Setenv("GOPASS_ACCOUNT_EMAIL", "")
	t.Setenv("GOPASS_DEBUG", "")
	return env
}

// recordingAgent is a locked-until-unlocked agent holding one entry.
type recordingAgent struct {
	mu       sync.Mutex
	locked   bool
	requests []ipc.Request
}

func (a *recordingAgent) Handle(_ context.Context, req ipc.Request) (any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, req)

	switch r := req.(type) {
	case ipc.UnlockRequest:
		if r.Password != "pw" {
			return nil, service.ErrInvalidPassword
		}
		a.locked = false
		return nil, nil
	case ipc.GetRequest:
		if a.locked {
			return nil, service.ErrLocked
		}
		if r.Name != "github" {
			return nil, service.ErrNotFound
		}
		return models.Entry{Name: "github", Username: "alice", Password: "s3cret"}, nil
	case ipc.GenerateRequest:
		return ipc.GenerateResult{Password: "generated", Stored: r.Name != ""}, nil
	case ipc.StatusRequest:
		return models.AgentStatus{Locked: a.locked, LoggedIn: true}, nil
	}
	return nil, nil
}

func (a *recordingAgent) last() ipc.Request {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.requests) == 0 {
		return nil
	}
	return a.requests[len(a.requests)-1]
}

func serveAgent(t *testing.T, env testEnv, agent *recordingAgent) {
	t.Helper()
	srv := ipc.NewServer(filepath.Join(env.runtimeDir, "agent.sock"), agent, logger.Nop())
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

// run executes args with stdin fed from input and returns the exit code,
// stdout and stderr.
func run(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), newCLI(r, &stdout, &stderr), args)
	return code, stdout.String(), stderr.String()
}

func TestGet(t *testing.T) {
	env := isolate(t)
	agent := &recordingAgent{}
	serveAgent(t, env, agent)

	code, stdout, stderr := run(t, "", "get", "github")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "s3cret\n", stdout)
	assert.Equal(t, ipc.GetRequest{Name: "github"}, agent.last())
}

func TestGet_LockedReadsPasswordFromStdin(t *testing.T) {
	env := isolate(t)
	agent := &recordingAgent{locked: true}
	serveAgent(t, env, agent)

	code, stdout, stderr := run(t, "pw\n", "get", "github", "alice")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "s3cret\n", stdout)
	assert.Equal(t, ipc.GetRequest{Name: "github", User: "alice"}, agent.last())
}

func TestGet_ErrorFormat(t *testing.T) {
	env := isolate(t)
	serveAgent(t, env, &recordingAgent{})

	code, stdout, stderr := run(t, "", "get", "gitlab")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "gopass: get: entry not found\n", stderr)
}

func TestGenerate_Policies(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want ipc.GenerateRequest
	}{
		{
			name: "default",
			args: []string{"generate", "20"},
			want: ipc.GenerateRequest{Policy: models.PolicyAllChars, Length: 20},
		},
		{
			name: "no symbols",
			args: []string{"generate", "--no-symbols", "12"},
			want: ipc.GenerateRequest{Policy: models.PolicyNoSymbols, Length: 12},
		},
		{
			name: "only numbers",
			args: []string{"generate", "--only-numbers", "6"},
			want: ipc.GenerateRequest{Policy: models.PolicyNumbersOnly, Length: 6},
		},
		{
			name: "nonconfusables",
			args: []string{"generate", "--nonconfusables", "16"},
			want: ipc.GenerateRequest{Policy: models.PolicyNonConfusables, Length: 16},
		},
		{
			name: "diceware stored",
			args: []string{"generate", "--diceware", "--folder", "web", "5", "github", "alice"},
			want: ipc.GenerateRequest{
				Policy: models.PolicyDiceware,
				Length: 5,
				Name:   "github",
				User:   "alice",
				Folder: "web",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := isolate(t)
			agent := &recordingAgent{}
			serveAgent(t, env, agent)

			code, stdout, stderr := run(t, "", tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, "generated\n", stdout)
			assert.Equal(t, tt.want, agent.last())
		})
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	isolate(t)

	t.Run("policies are exclusive", func(t *testing.T) {
		code, _, stderr := run(t, "", "generate", "--no-symbols", "--diceware", "8")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "gopass: generate: ")
		assert.Contains(t, stderr, "none of the others can be")
	})

	t.Run("length is not a number", func(t *testing.T) {
		code, _, stderr := run(t, "", "generate", "abc")
		assert.Equal(t, 1, code)
		assert.Equal(t, "gopass: generate: invalid length \"abc\"\n", stderr)
	})

	t.Run("length is zero", func(t *testing.T) {
		code, _, _ := run(t, "", "generate", "0")
		assert.Equal(t, 1, code)
	})
}

func TestConfig_SetShowUnset(t *testing.T) {
	env := isolate(t)

	code, _, stderr := run(t, "", "config", "set", "email", "bob@example.com")
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"email": "bob@example.com"`)

	code, stdout, stderr := run(t, "", "config", "show")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"email": "bob@example.com"`)
	assert.Contains(t, stdout, `"lock_timeout": "1h0m0s"`)

	code, _, stderr = run(t, "", "config", "unset", "email")
	require.Equal(t, 0, code, stderr)

	code, stdout, _ = run(t, "", "config", "show")
	require.Equal(t, 0, code)
	assert.NotContains(t, stdout, "bob@example.com")
}

func TestConfig_SetStopsRunningAgent(t *testing.T) {
	env := isolate(t)
	agent := &recordingAgent{}
	serveAgent(t, env, agent)

	code, _, stderr := run(t, "", "config", "set", "lock_timeout", "15m")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, ipc.QuitRequest{}, agent.last())
}

func TestConfig_UnknownKey(t *testing.T) {
	isolate(t)

	code, _, stderr := run(t, "", "config", "set", "colour", "red")
	assert.Equal(t, 1, code)
	assert.Equal(t, "gopass: config set: unknown config key: \"colour\"\n", stderr)
}

func TestLock_WithoutAgentSucceeds(t *testing.T) {
	isolate(t)

	code, _, stderr := run(t, "", "lock")
	assert.Equal(t, 0, code, stderr)
}
