package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/go-pass-agent/internal/ipc"
	"github.com/gofrs/flock"
)

// pidFile is the agent's exclusivity lock. The flock is held for the whole
// life of the process; the kernel drops it if the process dies.
type pidFile struct {
	lock *flock.Flock
}

func acquirePIDFile(path string) (*pidFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create runtime dir: %w", err)
	}

	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s is held", ipc.ErrAlreadyRunning, path)
	}

	if err = os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o600); err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("write pid: %w", err)
	}
	return &pidFile{lock: lock}, nil
}

// release removes the file and drops the lock.
func (p *pidFile) release() error {
	if p == nil || p.lock == nil {
		return nil
	}
	err := os.Remove(p.lock.Path())
	if unlockErr := p.lock.Unlock(); unlockErr != nil && err == nil {
		err = unlockErr
	}
	p.lock = nil
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
