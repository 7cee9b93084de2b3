package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemshift/internal/config"
)

// loadConfig loads the configuration and applies --preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.BoardPreset(flagPreset)); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to w at the level --debug selects.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// playLogger returns the logger for a full-screen session, which cannot
// share the terminal with log output. Without --debug nothing is logged;
// with it, logs go to ~/.gemshift/debug.log. The returned closer must be called.
func playLogger() (*log.Logger, func(), error) {
	if !flagDebug {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, ".gemshift", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log: %w", err)
	}
	return newLogger(f, "gemshift"), func() { f.Close() }, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
