package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/cli/config"
	controller "github.com/Amey2003/excel-issue-tracker/pkg/controller/http"
	"github.com/Amey2003/excel-issue-tracker/pkg/repository"
	"github.com/Amey2003/excel-issue-tracker/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		sourceCfg  config.Source
		refreshCfg config.Refresh
		slackCfg   config.Slack
		aliasesCfg config.Aliases
	)

	flags := joinFlags(
		serverCfg.Flags(),
		sourceCfg.Flags(),
		refreshCfg.Flags(),
		slackCfg.Flags(),
		aliasesCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server with periodic dashboard refresh",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting issuedash server",
				slog.Any("server", serverCfg),
				slog.Any("source", sourceCfg),
				slog.Any("refresh", refreshCfg),
				slog.Any("slack", slackCfg),
				slog.Any("aliases", aliasesCfg),
			)

			if err := refreshCfg.Validate(); err != nil {
				return err
			}

			source, err := sourceCfg.Configure()
			if err != nil {
				return err
			}

			aliases, err := aliasesCfg.Configure()
			if err != nil {
				return err
			}

			notifier, err := slackCfg.ConfigureOptional(logger)
			if err != nil {
				return err
			}

			repo := repository.NewMemory()
			defer repo.Close()

			opts := []usecase.Option{usecase.WithAliases(aliases)}
			if notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}
			dashboardUC := usecase.NewDashboard(source, repo, opts...)

			scheduler := usecase.NewScheduler(dashboardUC, refreshCfg.Interval)
			if err := scheduler.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start refresh scheduler")
			}

			server := controller.NewServer(ctx, serverCfg.Configure(), dashboardUC)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			select {
			case <-scheduler.Stop().Done():
			case <-shutdownCtx.Done():
				logger.Warn("Refresh still running at shutdown")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
