package dedupe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/artie-labs/dedupe/clients/bigquery"
	"github.com/artie-labs/dedupe/clients/bigquery/dialect"
	"github.com/artie-labs/dedupe/lib/config"
	"github.com/artie-labs/dedupe/lib/config/constants"
	"github.com/artie-labs/dedupe/lib/daterange"
	"github.com/artie-labs/dedupe/lib/dwh"
	"github.com/artie-labs/dedupe/lib/jobs"
	"github.com/artie-labs/dedupe/lib/telemetry/metrics/base"
)

type Orchestrator struct {
	warehouse dwh.Warehouse
	metrics   base.Client
	dialect   dialect.BigQueryDialect
	// limiter is nil when submissions are not paced.
	limiter *rate.Limiter
}

func NewOrchestrator(warehouse dwh.Warehouse, metricsClient base.Client, maxSubmitsPerSecond float64) *Orchestrator {
	o := &Orchestrator{
		warehouse: warehouse,
		metrics:   metricsClient,
	}

	if maxSubmitsPerSecond > 0 {
		o.limiter = rate.NewLimiter(rate.Limit(maxSubmitsPerSecond), 1)
	}

	return o
}

func newJobID(table string) string {
	return fmt.Sprintf("%s_%s_%s", constants.JobIDPrefix, table, uuid.NewString())
}

func (o *Orchestrator) DoesTableExist(ctx context.Context, tableID dialect.TableIdentifier) error {
	if err := o.warehouse.GetTable(ctx, tableID); err != nil {
		if errors.Is(err, bigquery.ErrTableNotFound) {
			slog.Warn(fmt.Sprintf("Table %s not found.", tableID.FullyQualifiedName()))
		}

		return err
	}

	return nil
}

// RemoveDuplicates submits the dedupe query for a single table and returns without waiting for it to finish.
func (o *Orchestrator) RemoveDuplicates(ctx context.Context, tableID dialect.TableIdentifier) (jobs.Handle, error) {
	if err := o.DoesTableExist(ctx, tableID); err != nil {
		return jobs.Handle{}, err
	}

	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return jobs.Handle{}, fmt.Errorf("failed to wait for submission slot: %w", err)
		}
	}

	query := o.dialect.BuildDedupeQuery(tableID)
	slog.Debug("Submitting dedupe query", slog.String("table", tableID.FullyQualifiedName()), slog.String("query", query))

	handle, err := o.warehouse.Query(ctx, query, newJobID(tableID.Table()))
	if err != nil {
		return jobs.Handle{}, fmt.Errorf("failed to submit dedupe job for %q: %w", tableID.FullyQualifiedName(), err)
	}

	handle.Table = tableID.Table()
	o.metrics.Incr("jobs.submitted", map[string]string{"dataset": tableID.Dataset(), "table": tableID.Table()})
	return handle, nil
}

// RemoveDuplicatesForRange submits one dedupe job per date partition, in date order.
// Any error aborts the whole range, jobs that were already submitted are left running.
func (o *Orchestrator) RemoveDuplicatesForRange(ctx context.Context, cfg config.Dedupe) ([]jobs.Handle, error) {
	dates, err := daterange.ExpandStrings(cfg.StartDate, cfg.EndDate)
	if err != nil {
		return nil, err
	}

	slog.Debug(fmt.Sprintf("Number of date partitions: %d", len(dates)))

	baseTableID := dialect.NewTableIdentifier(cfg.Project, cfg.Dataset, "")
	var handles []jobs.Handle
	for _, date := range dates {
		tableID := baseTableID.WithTable(cfg.TableSuffix + date)
		if cfg.DryRun {
			if err = o.DoesTableExist(ctx, tableID); err != nil {
				return nil, err
			}

			slog.Info("Dry run, skipping submission", slog.String("table", tableID.FullyQualifiedName()), slog.String("query", o.dialect.BuildDedupeQuery(tableID)))
			continue
		}

		handle, err := o.RemoveDuplicates(ctx, tableID)
		if err != nil {
			if len(handles) > 0 {
				slog.Warn("Aborting, jobs that were already submitted will keep running", slog.Any("jobs", jobIDs(handles)))
			}

			return nil, err
		}

		slog.Debug("Submitted dedupe job", slog.String("jobID", handle.ID), slog.String("table", handle.Table))
		handles = append(handles, handle)
	}

	return handles, nil
}

func jobIDs(handles []jobs.Handle) []string {
	ids := make([]string, len(handles))
	for i, handle := range handles {
		ids[i] = handle.ID
	}

	return ids
}
