// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvmpi/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvmpi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, config.Local, cfg.Mode())
	require.Equal(t, config.DefaultProcs, cfg.Size())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
rank: 2
peers: ["a:1", "b:2", "c:3"]
log_level: debug
dial_timeout: 5s
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Network, cfg.Mode())
	require.Equal(t, 3, cfg.Size())
	require.Equal(t, 2, cfg.Rank)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, config.DefaultLogFormat, cfg.LogFormat, "unset keys keep defaults")
	require.Equal(t, 5*time.Second, cfg.DialTimeout)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "prcs: 3\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "procs: [1\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"default", func(*config.Config) {}, true},
		{"zero procs", func(c *config.Config) { c.Procs = 0 }, false},
		{"network ok", func(c *config.Config) { c.Peers = []string{"a:1", "b:1"}; c.Rank = 1 }, true},
		{"network ignores procs", func(c *config.Config) { c.Peers = []string{"a:1"}; c.Procs = 0 }, true},
		{"rank out of range", func(c *config.Config) { c.Peers = []string{"a:1"}; c.Rank = 1 }, false},
		{"empty peer", func(c *config.Config) { c.Peers = []string{"a:1", ""} }, false},
		{"bad dial timeout", func(c *config.Config) { c.Peers = []string{"a:1"}; c.DialTimeout = 0 }, false},
		{"bad level", func(c *config.Config) { c.LogLevel = "chatty" }, false},
		{"bad format", func(c *config.Config) { c.LogFormat = "xml" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestResolve_Precedence checks defaults < file < flags.
func TestResolve_Precedence(t *testing.T) {
	path := writeFile(t, "procs: 3\nlog_level: warn\nlog_format: json\n")

	tests := []struct {
		name       string
		args       []string
		wantProcs  int
		wantLevel  string
		wantFormat string
	}{
		{"defaults only", nil, config.DefaultProcs, "info", "text"},
		{"file", []string{"--config", path}, 3, "warn", "json"},
		{"flag beats file", []string{"--config", path, "--procs", "6", "--log-level", "debug"}, 6, "debug", "json"},
		{"flag without file", []string{"--log-format", "json"}, config.DefaultProcs, "info", "json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flagged := config.Default()
			config.BindFlags(fs, &flagged)
			require.NoError(t, fs.Parse(tc.args))

			cfg, err := config.Resolve(fs, flagged)
			require.NoError(t, err)
			require.Equal(t, tc.wantProcs, cfg.Procs)
			require.Equal(t, tc.wantLevel, cfg.LogLevel)
			require.Equal(t, tc.wantFormat, cfg.LogFormat)
		})
	}
}

func TestResolve_NetworkFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagged := config.Default()
	config.BindFlags(fs, &flagged)
	require.NoError(t, fs.Parse([]string{"--peers", "h0:7000,h1:7000", "--rank", "1", "--dial-timeout", "2s"}))

	cfg, err := config.Resolve(fs, flagged)
	require.NoError(t, err)
	require.Equal(t, config.Network, cfg.Mode())
	require.Equal(t, []string{"h0:7000", "h1:7000"}, cfg.Peers)
	require.Equal(t, 1, cfg.Rank)
	require.Equal(t, 2*time.Second, cfg.DialTimeout)
}

func TestResolve_Invalid(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagged := config.Default()
	config.BindFlags(fs, &flagged)
	require.NoError(t, fs.Parse([]string{"--procs", "0"}))

	_, err := config.Resolve(fs, flagged)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
