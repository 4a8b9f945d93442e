package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/jin/internal/bootstrap"
	"github.com/at-ishikawa/jin/internal/config"
	"github.com/at-ishikawa/jin/internal/server"
	"github.com/at-ishikawa/jin/internal/vocabulary"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	var envFile string

	cmd := &cobra.Command{
		Use:           "jin-server",
		Short:         "Serve vocabulary sets over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			logger := setupLogger(cfg.Log.SlogLevel())
			return run(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", os.Getenv("JIN_CONFIG"), "config file path")
	cmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the config (default .env when present)")
	return cmd
}

func loadConfig(configFile string) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func setupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
	slog.SetDefault(logger)
	return logger
}

func newServer(cfg *config.Config, logger *slog.Logger) (*http.Server, error) {
	loader, err := vocabulary.NewLoader(
		cfg.Vocabulary.DataDirectory,
		cfg.Vocabulary.CacheDirectory,
		vocabulary.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.NewLoader() > %w", err)
	}

	router := server.NewRouter(server.NewHandler(loader), cfg.Server, logger)
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	app := bootstrap.New(bootstrap.WithLogger(logger))
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("dataDirectory", cfg.Vocabulary.DataDirectory),
			slog.String("cacheDirectory", cfg.Vocabulary.CacheDirectory),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}
