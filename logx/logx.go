// SPDX-License-Identifier: MIT

// Package logx builds the process logger from a level and a format name.
package logx

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrUnknownLevel indicates a level name other than debug, info, warn, error.
	ErrUnknownLevel = errors.New("logx: unknown level")
	// ErrUnknownFormat indicates a format other than text or json.
	ErrUnknownFormat = errors.New("logx: unknown format")
)

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
}

// CheckFormat reports ErrUnknownFormat for anything but FormatText or FormatJSON.
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	}

	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// New returns a logger writing to w at level in the given format.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err = CheckFormat(format); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
