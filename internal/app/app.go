package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres"
	creaturerepo "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres/creature"
	trailrepo "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres/trail"
	userrepo "github.com/heartmarshall/pokeranch-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/pokeranch-backend/internal/auth"
	"github.com/heartmarshall/pokeranch-backend/internal/config"
	"github.com/heartmarshall/pokeranch-backend/internal/service/trail"
	"github.com/heartmarshall/pokeranch-backend/internal/transport/middleware"
	"github.com/heartmarshall/pokeranch-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, the trail service and the HTTP router,
// and serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	trailSvc := trail.NewService(
		logger,
		userrepo.New(pool),
		creaturerepo.New(pool),
		trailrepo.New(pool),
		postgres.NewTxManager(pool),
		trail.Options{
			CollectMaxAttempts: cfg.Trail.CollectMaxAttempts,
			Rand:               trail.NewRand(cfg.Trail.RNGSeed),
		},
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewRouter(RouterDeps{
		Logger:    logger,
		Trail:     rest.NewTrailHandler(trailSvc, logger),
		Health:    rest.NewHealthHandler(BuildVersion(), map[string]rest.Checker{"database": pool}),
		Validator: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
