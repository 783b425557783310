package game

import (
	"context"
	"fmt"
	"io"

	"github.com/samdwyer/barrenland/internal/config"
	"github.com/samdwyer/barrenland/internal/telemetry"
)

// Start does what a frontend's main needs before the first input: load .env
// and the config file, install tracing, build the logger and metrics, and
// create a session. The returned shutdown flushes telemetry and must be called
// on exit.
func Start(ctx context.Context, configPath string, logOut io.Writer) (*Session, func(context.Context) error, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	level, err := telemetry.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	logger := telemetry.NewLogger(logOut, level)

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// The game still works without traces
		logger.Warn("telemetry setup failed, continuing without tracing", "error", err)
		shutdown = func(context.Context) error { return nil }
	}

	s, err := New(ctx, cfg, WithLogger(logger), WithMetrics(telemetry.NewMetrics()))
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}
	return s, shutdown, nil
}
