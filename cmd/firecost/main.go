package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"firecost/internal/agent"
	"firecost/internal/cli"
	"firecost/internal/dataset"
	apphttp "firecost/internal/http"
	"firecost/internal/session"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	sessions := session.NewManager(cfg.SessionLimit, cfg.SessionTTL)
	analyst := agent.NewAnalyst(dataset.NewFixture(), agent.NewSummarizer(),
		agent.WithDefaultYear(cfg.DefaultYear),
		agent.WithDefaultTopN(cfg.DefaultTopN))

	srv := apphttp.NewServer(":"+cfg.Port, analyst, sessions, dataset.NewFixture())
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := cli.ShutdownContext(logger)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting firecost server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sessions.Janitor(ctx.Done(), cfg.JanitorInterval)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cli.GracePeriod)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
