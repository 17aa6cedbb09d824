package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// FileConfig is the on-disk JSON config. Keys are flat so that
// `gopass config set <key> <value>` maps one-to-one onto them.
type FileConfig struct {
	Email          string   `json:"email,omitempty"`
	BaseURL        string   `json:"base_url,omitempty"`
	IdentityURL    string   `json:"identity_url,omitempty"`
	LockTimeout    Duration `json:"lock_timeout,omitempty"`
	SyncInterval   Duration `json:"sync_interval,omitempty"`
	RequestTimeout Duration `json:"request_timeout,omitempty"`
	DataDir        string   `json:"data_dir,omitempty"`
	RuntimeDir     string   `json:"runtime_dir,omitempty"`
	AgentBinary    string   `json:"agent_binary,omitempty"`
}

// Keys lists the settable config keys in display order.
func Keys() []string {
	keys := make([]string, 0, len(fileConfigSetters))
	for k := range fileConfigSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var fileConfigSetters = map[string]func(*FileConfig, string) error{
	"email": func(c *FileConfig, v string) error {
		if !strings.Contains(v, "@") && v != "" {
			return fmt.Errorf("%w: email %q", ErrInvalidValue, v)
		}
		c.Email = v
		return nil
	},
	"base_url":      urlSetter(func(c *FileConfig) *string { return &c.BaseURL }),
	"identity_url":  urlSetter(func(c *FileConfig) *string { return &c.IdentityURL }),
	"lock_timeout":  durationSetter(func(c *FileConfig) *Duration { return &c.LockTimeout }),
	"sync_interval": durationSetter(func(c *FileConfig) *Duration { return &c.SyncInterval }),
	"request_timeout": durationSetter(func(c *FileConfig) *Duration {
		return &c.RequestTimeout
	}),
	"data_dir":     pathSetter(func(c *FileConfig) *string { return &c.DataDir }),
	"runtime_dir":  pathSetter(func(c *FileConfig) *string { return &c.RuntimeDir }),
	"agent_binary": pathSetter(func(c *FileConfig) *string { return &c.AgentBinary }),
}

func urlSetter(field func(*FileConfig) *string) func(*FileConfig, string) error {
	return func(c *FileConfig, v string) error {
		if v != "" {
			u, err := url.Parse(v)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("%w: url %q", ErrInvalidValue, v)
			}
		}
		*field(c) = strings.TrimRight(v, "/")
		return nil
	}
}

func durationSetter(field func(*FileConfig) *Duration) func(*FileConfig, string) error {
	return func(c *FileConfig, v string) error {
		if v == "" {
			*field(c) = 0
			return nil
		}
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: duration %q", ErrInvalidValue, v)
		}
		*field(c) = d
		return nil
	}
}

func pathSetter(field func(*FileConfig) *string) func(*FileConfig, string) error {
	return func(c *FileConfig, v string) error {
		if v != "" && !filepath.IsAbs(v) {
			return fmt.Errorf("%w: path %q must be absolute", ErrInvalidValue, v)
		}
		*field(c) = v
		return nil
	}
}

// LoadFile reads the JSON config at path. A missing file yields an empty
// config.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var fc FileConfig
	if err = json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}
	return &fc, nil
}

// Set assigns value to key after validating it.
func (c *FileConfig) Set(key, value string) error {
	setter, ok := fileConfigSetters[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return setter(c, strings.TrimSpace(value))
}

// Unset clears key.
func (c *FileConfig) Unset(key string) error {
	return c.Set(key, "")
}

// Save writes the config to path atomically with mode 0600.
func (c *FileConfig) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	payload, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err = atomic.WriteFile(path, bytes.NewReader(append(payload, '\n'))); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return os.Chmod(path, 0o600)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	fc, err := LoadFile(jsonFilePath)
	if err != nil {
		return nil, err
	}
	return fc.structured(), nil
}

func (c *FileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		Account: Account{Email: c.Email},
		Provider: Provider{
			BaseURL:        c.BaseURL,
			IdentityURL:    c.IdentityURL,
			RequestTimeout: time.Duration(c.RequestTimeout),
		},
		Agent: Agent{
			LockTimeout:  time.Duration(c.LockTimeout),
			SyncInterval: time.Duration(c.SyncInterval),
			RuntimeDir:   c.RuntimeDir,
			Binary:       c.AgentBinary,
		},
		Storage: Storage{DataDir: c.DataDir},
	}
}

// Effective flattens a merged configuration into the file layout. It is
// what `gopass config show` prints.
func Effective(cfg *StructuredConfig) *FileConfig {
	return &FileConfig{
		Email:          cfg.Account.Email,
		BaseURL:        cfg.Provider.BaseURL,
		IdentityURL:    cfg.Provider.IdentityURL,
		LockTimeout:    Duration(cfg.Agent.LockTimeout),
		SyncInterval:   Duration(cfg.Agent.SyncInterval),
		RequestTimeout: Duration(cfg.Provider.RequestTimeout),
		DataDir:        cfg.Storage.DataDir,
		RuntimeDir:     cfg.Agent.RuntimeDir,
		AgentBinary:    cfg.Agent.Binary,
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s", from plain numbers of seconds, and from
// "off" for a disabled interval.
type Duration time.Duration

// Disabled marks a switched-off interval. A zero duration cannot be used
// because zero means "unset" while merging sources.
const Disabled = Duration(-1)

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value) * time.Second)
		return nil
	case string:
		tmp, err := parseDuration(value)
		if err != nil {
			return err
		}
		*d = tmp
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if d < 0 {
		return json.Marshal("off")
	}
	return json.Marshal(time.Duration(d).String())
}

func parseDuration(s string) (Duration, error) {
	switch strings.ToLower(s) {
	case "off", "never", "disabled":
		return Disabled, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return Disabled, nil
	}
	return Duration(d), nil
}
