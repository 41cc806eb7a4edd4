// Package cli implements the trailctl operator commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pokeranch-backend/internal/app"
	"github.com/heartmarshall/pokeranch-backend/internal/config"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("OK     ")
	skipMark = color.New(color.FgBlue).Sprint("EXISTS ")
	failMark = color.New(color.FgRed).Sprint("FAILED ")
)

// env is the logger and database pool shared by commands that talk to
// PostgreSQL.
type env struct {
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func connect(ctx context.Context) (*env, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &env{logger: logger, pool: pool}, nil
}

func (e *env) close() { e.pool.Close() }

// done logs how the named command ended and returns err unchanged.
func (e *env) done(ctx context.Context, name string, err error) error {
	if err != nil {
		e.logger.ErrorContext(ctx, "command failed", slog.String("command", name), slog.String("error", err.Error()))
		return err
	}
	e.logger.InfoContext(ctx, "command finished", slog.String("command", name))
	return nil
}
