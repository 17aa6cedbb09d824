// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// Keys holds the unwrapped vault key outside the Go heap. The region is
// mmap'd anonymously so the garbage collector never copies it, mlock'd when
// the process limits allow it, and zeroed by Close.
//
// Keys must not be copied. After Close, Bytes panics.
type Keys struct {
	mu     sync.Mutex
	data   []byte
	locked bool
	closed bool
}

// NewKeys moves source into a protected region and wipes source.
func NewKeys(source []byte) (*Keys, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("keys: empty source")
	}

	data, err := unix.Mmap(-1, 0, len(source), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("keys: mmap: %w", err)
	}

	// RLIMIT_MEMLOCK is often tiny in containers; an unlocked region is
	// still off-heap and zeroed on close.
	locked := unix.Mlock(data) == nil
	excludeFromCoreDump(data)

	copy(data, source)
	Wipe(source)

	return &Keys{data: data, locked: locked}, nil
}

// Bytes returns the key. The slice aliases the protected region and must
// not outlive the Keys.
func (k *Keys) Bytes() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		panic("keys: read after close")
	}
	return k.data
}

// Closed reports whether Close has run.
func (k *Keys) Closed() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.closed
}

// Close zeroes and releases the region. It is idempotent.
func (k *Keys) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil
	}
	k.closed = true

	Wipe(k.data)

	var firstErr error
	if k.locked {
		if err := unix.Munlock(k.data); err != nil {
			firstErr = fmt.Errorf("keys: munlock: %w", err)
		}
	}
	if err := unix.Munmap(k.data); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("keys: munmap: %w", err)
	}
	k.data = nil
	return firstErr
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
