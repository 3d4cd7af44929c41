// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmpi/logx"
)

// ErrInvalidConfig indicates settings that cannot describe a runnable group.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultProcs       = 4
	DefaultLogLevel    = "info"
	DefaultLogFormat   = logx.FormatText
	DefaultDialTimeout = 30 * time.Second
)

// Mode is how the group is hosted.
type Mode int

const (
	// Local runs every rank as a goroutine of this process.
	Local Mode = iota
	// Network runs this process as one rank of a WebSocket mesh.
	Network
)

// String returns "local" or "network".
func (m Mode) String() string {
	if m == Network {
		return "network"
	}

	return "local"
}

// Config is the resolved runtime configuration.
type Config struct {
	Procs       int           `yaml:"procs"`        // local mode group size
	Rank        int           `yaml:"rank"`         // network mode: own index in Peers
	Peers       []string      `yaml:"peers"`        // network mode: listen address per rank
	LogLevel    string        `yaml:"log_level"`    // debug, info, warn, error
	LogFormat   string        `yaml:"log_format"`   // text or json
	DialTimeout time.Duration `yaml:"dial_timeout"` // network mode: bound on forming the mesh
}

// Default returns the built-in configuration: a local group of DefaultProcs.
func Default() Config {
	return Config{
		Procs:       DefaultProcs,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		DialTimeout: DefaultDialTimeout,
	}
}

// Mode reports Network when peers are configured, Local otherwise.
func (c Config) Mode() Mode {
	if len(c.Peers) > 0 {
		return Network
	}

	return Local
}

// Size is the number of ranks in the group.
func (c Config) Size() int {
	if c.Mode() == Network {
		return len(c.Peers)
	}

	return c.Procs
}

// Load reads a YAML file on top of Default(). Unknown keys are rejected so a
// misspelled setting does not silently fall back to its default.
//
// Errors:
//   - file read errors; YAML errors wrapped with ErrInvalidConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config.Load(%s): %v: %w", path, err, ErrInvalidConfig)
	}

	return cfg, nil
}

// Validate checks the settings for the selected mode.
func (c Config) Validate() error {
	var errs []error
	switch c.Mode() {
	case Local:
		if c.Procs < 1 {
			errs = append(errs, fmt.Errorf("procs=%d must be >= 1", c.Procs))
		}
	case Network:
		if c.Rank < 0 || c.Rank >= len(c.Peers) {
			errs = append(errs, fmt.Errorf("rank=%d outside [0,%d)", c.Rank, len(c.Peers)))
		}
		for i, p := range c.Peers {
			if p == "" {
				errs = append(errs, fmt.Errorf("peer %d has an empty address", i))
			}
		}
		if c.DialTimeout <= 0 {
			errs = append(errs, fmt.Errorf("dial_timeout=%s must be positive", c.DialTimeout))
		}
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := logx.CheckFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
