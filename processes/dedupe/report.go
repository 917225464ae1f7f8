package dedupe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/artie-labs/dedupe/lib/config"
	"github.com/artie-labs/dedupe/lib/dwh"
	"github.com/artie-labs/dedupe/lib/jobs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const reportUploadTimeout = 30 * time.Second

type JobReport struct {
	jobs.Handle
	State jobs.State `json:"state,omitempty"`
	Error string     `json:"error,omitempty"`
}

// Report describes a single run, it is what gets uploaded when a report bucket is configured.
type Report struct {
	Project     string      `json:"project"`
	Dataset     string      `json:"dataset"`
	TableSuffix string      `json:"tableSuffix"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	DryRun      bool        `json:"dryRun"`
	Waited      bool        `json:"waited"`
	Jobs        []JobReport `json:"jobs"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// NewReport pairs up handles with their final statuses, statuses may be nil if we did not wait.
func NewReport(cfg config.Dedupe, handles []jobs.Handle, statuses []jobs.Status, generatedAt time.Time) Report {
	report := Report{
		Project:     cfg.Project,
		Dataset:     cfg.Dataset,
		TableSuffix: cfg.TableSuffix,
		StartDate:   cfg.StartDate,
		EndDate:     cfg.EndDate,
		DryRun:      cfg.DryRun,
		Waited:      statuses != nil,
		Jobs:        make([]JobReport, len(handles)),
		GeneratedAt: generatedAt.UTC(),
	}

	for i, handle := range handles {
		report.Jobs[i] = JobReport{Handle: handle}
		if i < len(statuses) {
			report.Jobs[i].State = statuses[i].State
			if statuses[i].Err != nil {
				report.Jobs[i].Error = statuses[i].Err.Error()
			}
		}
	}

	return report
}

func (r Report) FileName() string {
	return fmt.Sprintf("dedupe_%s_%s_%s_%s_%d.json", r.Project, r.Dataset, r.StartDate, r.EndDate, r.GeneratedAt.Unix())
}

func (r Report) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UploadReport is a no-op when the report is not enabled.
// The upload is detached from [ctx] so an interrupted run still leaves a report behind.
func UploadReport(ctx context.Context, uploader dwh.Uploader, cfg config.Report, report Report) (string, error) {
	if !cfg.Enabled() {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportUploadTimeout)
	defer cancel()

	data, err := report.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	uri, err := uploader.Upload(ctx, cfg.Bucket, cfg.Prefix, report.FileName(), "application/json", data)
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	slog.Info("Uploaded run report", slog.String("uri", uri))
	return uri, nil
}
