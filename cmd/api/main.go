package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sugerdarco/IPL-Data-Platform/internal/app"
	"github.com/sugerdarco/IPL-Data-Platform/internal/config"
	"github.com/sugerdarco/IPL-Data-Platform/internal/observability"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "ipl-api",
		Short:        "Serve the IPL data REST API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName, "env", cfg.AppEnv)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, logger, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace failed", "error", err)
		return err
	}
	logging.SetDefault(logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("shutdown uptrace failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope failed", "error", err)
		return err
	}
	defer func() { _ = stopProfiler() }()

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof failed", "error", err)
		return err
	}
	defer func() {
		if err := observability.StopPprofServer(pprofSrv, logger, cfg.ShutdownTimeout); err != nil {
			logger.Error("stop pprof failed", "error", err)
		}
	}()

	db, err := app.OpenDB(ctx, cfg, logger)
	if err != nil {
		logger.Error("open database failed", "error", err)
		return err
	}
	defer func() { _ = db.Close() }()

	srv, err := app.NewHTTPServer(cfg, db, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("http server failed", "error", err)
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return err
	}

	logger.Info("http server stopped")
	return nil
}
