package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/artie-labs/dedupe/clients/bigquery"
	"github.com/artie-labs/dedupe/lib/config"
	"github.com/artie-labs/dedupe/lib/gcslib"
	"github.com/artie-labs/dedupe/lib/jobs"
	"github.com/artie-labs/dedupe/lib/logger"
	"github.com/artie-labs/dedupe/lib/telemetry/metrics"
	"github.com/artie-labs/dedupe/processes/dedupe"
)

func main() {
	// Parse args into settings.
	settings, err := config.LoadSettings(os.Args[1:])
	if err != nil {
		var info config.InfoRequest
		if errors.As(err, &info) {
			fmt.Println(info.Message)
			return
		}

		logger.Fatal("Failed to initialize config", slog.Any("err", err))
	}

	// Initialize default logger
	slogger, usingSentry := logger.NewLogger(settings)
	slog.SetDefault(slogger)
	if usingSentry {
		defer sentryFlush()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, settings); err != nil {
		stop()
		slog.Error("Dedupe failed", slog.Any("err", err))
		sentryFlush()
		os.Exit(1)
	}
}

func run(ctx context.Context, settings *config.Settings) error {
	cfg := settings.Dedupe
	slog.Info("Config is loaded",
		slog.String("project", cfg.Project),
		slog.String("dataset", cfg.Dataset),
		slog.String("tableSuffix", cfg.TableSuffix),
		slog.String("startDate", cfg.StartDate),
		slog.String("endDate", cfg.EndDate),
		slog.Bool("wait", cfg.Wait),
		slog.Bool("dryRun", cfg.DryRun),
	)

	store, err := bigquery.LoadBigQuery(ctx, cfg.Project, settings.Config.BigQuery)
	if err != nil {
		return err
	}
	defer store.Close()

	orchestrator := dedupe.NewOrchestrator(store, metrics.LoadExporter(settings.Config), cfg.MaxSubmitsPerSecond)
	handles, err := orchestrator.RemoveDuplicatesForRange(ctx, cfg)
	if err != nil {
		return err
	}

	slog.Info("Submitted dedupe jobs", slog.Int("jobs", len(handles)))

	var statuses []jobs.Status
	var waitErr error
	if cfg.Wait {
		waitCtx := ctx
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			waitCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}

		// Failed jobs still get reported below.
		statuses, waitErr = orchestrator.WaitTillDone(waitCtx, handles, cfg.PollInterval)
	}

	if settings.Config.Report.Enabled() {
		// Still write the report when the wait was interrupted.
		gcsClient, err := gcslib.LoadGCS(context.WithoutCancel(ctx))
		if err != nil {
			return errors.Join(waitErr, err)
		}
		defer gcsClient.Close()

		report := dedupe.NewReport(cfg, handles, statuses, time.Now())
		if _, err = dedupe.UploadReport(ctx, gcsClient, settings.Config.Report, report); err != nil {
			return errors.Join(waitErr, err)
		}
	}

	return waitErr
}

func sentryFlush() {
	sentry.Flush(2 * time.Second)
}
