package dedupe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/artie-labs/dedupe/lib/jobs"
)

func (o *Orchestrator) poll(ctx context.Context, handles []jobs.Handle) ([]jobs.Status, jobs.Tally, error) {
	var tally jobs.Tally
	statuses := make([]jobs.Status, len(handles))
	for i, handle := range handles {
		status, err := o.warehouse.GetJob(ctx, handle)
		if err != nil {
			return nil, jobs.Tally{}, err
		}

		statuses[i] = status
		tally.Add(status)
	}

	o.metrics.Gauge("jobs.pending", float64(tally.Pending), nil)
	o.metrics.Gauge("jobs.running", float64(tally.Running), nil)
	o.metrics.Gauge("jobs.done", float64(tally.Done), nil)
	return statuses, tally, nil
}

// WaitTillDone polls every job until they all report DONE, sleeping [pollInterval] between rounds.
// It stops early if [ctx] is cancelled. The returned statuses line up with [handles].
func (o *Orchestrator) WaitTillDone(ctx context.Context, handles []jobs.Handle, pollInterval time.Duration) ([]jobs.Status, error) {
	start := time.Now()
	for {
		statuses, tally, err := o.poll(ctx, handles)
		if err != nil {
			return nil, fmt.Errorf("failed to poll jobs: %w", err)
		}

		if tally.AllDone() {
			o.metrics.Timing("jobs.wait", time.Since(start), nil)
			slog.Info("All jobs are done", slog.Int("jobs", tally.Total), slog.Int("failed", tally.Failed), slog.Duration("elapsed", time.Since(start)))
			return statuses, failedJobsErr(handles, statuses)
		}

		slog.Debug(fmt.Sprintf("%s|sleeping for %s", tally, pollInterval))
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("stopped waiting for jobs: %w", ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}

func failedJobsErr(handles []jobs.Handle, statuses []jobs.Status) error {
	var errs []error
	for i, status := range statuses {
		if status.Failed() {
			errs = append(errs, fmt.Errorf("job %q for table %q failed: %w", handles[i].ID, handles[i].Table, status.Err))
		}
	}

	return errors.Join(errs...)
}
