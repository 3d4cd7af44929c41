// SPDX-License-Identifier: MIT

package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig      = "config"
	FlagProcs       = "procs"
	FlagRank        = "rank"
	FlagPeers       = "peers"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagDialTimeout = "dial-timeout"
)

// BindFlags registers one flag per setting on fs, writing into cfg, plus
// --config for the YAML file path. Current cfg values become flag defaults.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.String(FlagConfig, "", "YAML configuration file")
	fs.IntVar(&cfg.Procs, FlagProcs, cfg.Procs, "number of in-process ranks (local mode)")
	fs.IntVar(&cfg.Rank, FlagRank, cfg.Rank, "this process's rank (network mode)")
	fs.StringSliceVar(&cfg.Peers, FlagPeers, cfg.Peers, "comma-separated listen address per rank; enables network mode")
	fs.StringVar(&cfg.LogLevel, FlagLogLevel, cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, FlagLogFormat, cfg.LogFormat, "log format: text or json")
	fs.DurationVar(&cfg.DialTimeout, FlagDialTimeout, cfg.DialTimeout, "time allowed to form the network mesh")
}

// Resolve layers the sources: it loads --config (if given) over Default() and
// then copies every flag the user actually set from flagged, which must be the
// Config passed to BindFlags. The result is validated.
func Resolve(fs *pflag.FlagSet, flagged Config) (Config, error) {
	cfg := Default()
	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		if cfg, err = Load(path); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case FlagProcs:
			cfg.Procs = flagged.Procs
		case FlagRank:
			cfg.Rank = flagged.Rank
		case FlagPeers:
			cfg.Peers = flagged.Peers
		case FlagLogLevel:
			cfg.LogLevel = flagged.LogLevel
		case FlagLogFormat:
			cfg.LogFormat = flagged.LogFormat
		case FlagDialTimeout:
			cfg.DialTimeout = flagged.DialTimeout
		}
	})

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
