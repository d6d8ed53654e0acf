package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/Amey2003/excel-issue-tracker/pkg/cli/config"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/repository"
	"github.com/Amey2003/excel-issue-tracker/pkg/service/render"
	"github.com/Amey2003/excel-issue-tracker/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// reportOptions controls a single report run
type reportOptions struct {
	Date   string
	Format string
}

func cmdReport() *cli.Command {
	var (
		sourceCfg  config.Source
		aliasesCfg config.Aliases
		opts       reportOptions
	)

	flags := joinFlags(
		sourceCfg.Flags(),
		aliasesCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Usage:       "Restrict the developer matrix to issues found on this day (YYYY-MM-DD)",
				Category:    "Report",
				Destination: &opts.Date,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (text, json)",
				Category:    "Report",
				Value:       "text",
				Destination: &opts.Format,
			},
		},
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Fetch issues once and print the dashboard",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Debug("Running report",
				slog.Any("source", sourceCfg),
				slog.Any("aliases", aliasesCfg),
				slog.String("date", opts.Date),
				slog.String("format", opts.Format),
			)

			source, err := sourceCfg.Configure()
			if err != nil {
				return err
			}
			aliases, err := aliasesCfg.Configure()
			if err != nil {
				return err
			}

			return runReport(ctx, c.Root().Writer, source, aliases, opts)
		},
	}
}

func runReport(ctx context.Context, w io.Writer, source interfaces.IssueSource, aliases *model.FieldAliases, opts reportOptions) error {
	if opts.Format != "" && opts.Format != "text" && opts.Format != "json" {
		return goerr.New("invalid report format", goerr.V("format", opts.Format))
	}

	repo := repository.NewMemory()
	defer repo.Close()

	uc := usecase.NewDashboard(source, repo, usecase.WithAliases(aliases))
	snapshot, err := uc.Refresh(ctx)
	if err != nil {
		return err
	}

	dashboard := *snapshot.Dashboard
	if opts.Date != "" {
		matrix, err := uc.DeveloperMatrix(ctx, opts.Date)
		if err != nil {
			return err
		}
		dashboard.DeveloperMatrix = matrix
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(&dashboard); err != nil {
			return goerr.Wrap(err, "failed to encode dashboard")
		}
		return nil
	}

	return render.Dashboard(w, &dashboard)
}
