package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/gcbaptista/campus-buzz/api"
	"github.com/gcbaptista/campus-buzz/config"
	"github.com/gcbaptista/campus-buzz/internal/auth"
	"github.com/gcbaptista/campus-buzz/internal/observability"
	"github.com/gcbaptista/campus-buzz/store"
)

func newServeCommand(cfgFile *string) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(v, *cfgFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), settings)
		},
	}

	flags := cmd.Flags()
	flags.String("port", "", "port to listen on (overrides server.port)")
	flags.String("db-path", "", "SQLite database file (overrides database.path)")
	flags.Bool("no-seed", false, "do not insert sample data into an empty database")
	_ = v.BindPFlag("server.port", flags.Lookup("port"))
	_ = v.BindPFlag("database.path", flags.Lookup("db-path"))

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if noSeed, _ := cmd.Flags().GetBool("no-seed"); noSeed {
			v.Set("database.seed", false)
		}
	}
	return cmd
}

// newRouter assembles the middleware chain and the API routes.
func newRouter(settings *config.Settings, deps api.Dependencies) *gin.Engine {
	gin.SetMode(settings.Server.Mode)

	router := gin.New()
	router.Use(
		api.RequestIDMiddleware(),
		api.RecoveryMiddleware(deps.Logger),
		api.RequestLoggerMiddleware(deps.Logger),
		api.SecurityHeadersMiddleware(),
		api.CORSMiddleware(settings.Server.AllowedOrigins),
		api.RequestSizeLimitMiddleware(settings.Server.MaxBodyBytes),
	)
	api.SetupRoutes(router, deps)
	return router
}

func serve(ctx context.Context, settings *config.Settings) error {
	logger := observability.NewLogger(settings.Logger)
	defer logger.Sync() //nolint:errcheck

	hasher := auth.NewPasswordHasher(settings.Auth.BcryptCost)
	db, err := store.Open(ctx, settings.Database.Path, store.Options{
		Seed:           settings.Database.Seed,
		PasswordHasher: hasher,
		Logger:         logger.Named("store"),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	router := newRouter(settings, api.Dependencies{
		Store: db,
		Tokens: auth.NewTokenManager(auth.TokenConfig{
			Secret: settings.Auth.JWTSecret,
			Issuer: settings.Auth.Issuer,
			TTL:    settings.Auth.TokenTTL,
		}),
		Hasher:       hasher,
		Logger:       logger.Named("api"),
		LoginLimiter: api.NewRateLimiter(rate.Limit(settings.Auth.LoginRateLimit), settings.Auth.LoginBurst),
	})

	server := &http.Server{
		Addr:              ":" + settings.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr), zap.String("version", Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("timeout", settings.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}
