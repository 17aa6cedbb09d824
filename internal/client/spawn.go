package client

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
)

// Spawner returns an ipc.SpawnFunc that starts binary detached from the
// terminal: a new session, no stdio, the caller's environment.
func Spawner(binary string) ipc.SpawnFunc {
	return func(context.Context) error {
		path, err := resolveBinary(binary)
		if err != nil {
			return err
		}

		// not CommandContext: the agent must outlive this process
		cmd := exec.Command(path)
		cmd.Env = os.Environ()
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
		if err = cmd.Start(); err != nil {
			return fmt.Errorf("start %s: %w", path, err)
		}
		return cmd.Process.Release()
	}
}

// resolveBinary prefers an agent installed next to the running front end,
// then falls back to PATH.
func resolveBinary(binary string) (string, error) {
	if strings.ContainsRune(binary, filepath.Separator) {
		return binary, nil
	}
	if self, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), binary)
		if info, statErr := os.Stat(sibling); statErr == nil && !info.IsDir() {
			return sibling, nil
		}
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", fmt.Errorf("find agent binary: %w", err)
	}
	return path, nil
}
