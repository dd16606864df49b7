package main

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/amonks/tasklist/internal/config"
	"github.com/amonks/tasklist/internal/logging"
	"github.com/amonks/tasklist/internal/paths"
	"github.com/amonks/tasklist/internal/state"
	"github.com/amonks/tasklist/internal/todoenv"
)

// app holds what a single tl invocation needs: configuration, the clock,
// the logger and the state store.
type app struct {
	config *config.Config
	now    func() time.Time
	logger zerolog.Logger
	store  *state.Store
}

var (
	currentApp *app
	closeLog   func()
)

// openApp resolves configuration and opens the state store. It is called
// lazily by commands that touch state.
func openApp() (*app, error) {
	if currentApp != nil {
		return currentApp, nil
	}

	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	level := strings.TrimSpace(rootLogLevel)
	if level == "" {
		level = cfg.Log.Level
	}
	logger, closeFn, err := logging.New(level, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	closeLog = closeFn

	now, err := todoenv.Clock()
	if err != nil {
		return nil, err
	}

	dir, err := paths.ResolveWithDefault(strings.TrimSpace(rootStateDir), todoenv.StateDir)
	if err != nil {
		return nil, err
	}

	cliLogger := logging.Component(logger, "cli")
	cliLogger.Debug().Str("state_dir", dir).Msg("opening state")

	currentApp = &app{
		config: cfg,
		now:    now,
		logger: cliLogger,
		store:  state.NewStore(dir, state.Options{Now: now, Logger: &logger}),
	}
	return currentApp, nil
}

func closeApp() {
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
	currentApp = nil
}
