package bigquery

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/artie-labs/dedupe/clients/bigquery/dialect"
	"github.com/artie-labs/dedupe/lib/config"
	"github.com/artie-labs/dedupe/lib/jobs"
)

const GooglePathToCredentialsEnvKey = "GOOGLE_APPLICATION_CREDENTIALS"

type Store struct {
	client   *bigquery.Client
	location string
}

func NewStore(client *bigquery.Client, location string) *Store {
	return &Store{client: client, location: location}
}

// LoadBigQuery builds a client that runs jobs in [projectID].
func LoadBigQuery(ctx context.Context, projectID string, cfg config.BigQuery, opts ...option.ClientOption) (*Store, error) {
	if credPath := cfg.PathToCredentials; credPath != "" {
		// If the credPath is set, let's set it into the env var.
		slog.Debug("Writing the path to BQ credentials to env var for google auth", slog.String("path", credPath))
		if err := os.Setenv(GooglePathToCredentialsEnvKey, credPath); err != nil {
			return nil, fmt.Errorf("error setting env var for %q: %w", GooglePathToCredentialsEnvKey, err)
		}
	}

	client, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}

	return NewStore(client, cfg.Location), nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// GetTable returns [ErrTableNotFound] if the table does not exist.
func (s *Store) GetTable(ctx context.Context, tableID dialect.TableIdentifier) error {
	_, err := s.client.DatasetInProject(tableID.ProjectID(), tableID.Dataset()).Table(tableID.Table()).Metadata(ctx)
	if err != nil {
		if isNotFoundErr(err) {
			return fmt.Errorf("%w: %s", ErrTableNotFound, tableID.FullyQualifiedName())
		}

		return fmt.Errorf("failed to get table %q: %w", tableID.FullyQualifiedName(), err)
	}

	return nil
}

// Query submits [query] as a batch priority job and returns without waiting for it.
func (s *Store) Query(ctx context.Context, query string, jobID string) (jobs.Handle, error) {
	q := s.client.Query(query)
	q.Priority = bigquery.BatchPriority
	q.JobID = jobID
	q.Location = s.location

	job, err := q.Run(ctx)
	if err != nil {
		return jobs.Handle{}, fmt.Errorf("failed to submit query job: %w", err)
	}

	return jobs.Handle{ID: job.ID(), Location: job.Location()}, nil
}

func (s *Store) GetJob(ctx context.Context, handle jobs.Handle) (jobs.Status, error) {
	job, err := s.client.JobFromIDLocation(ctx, handle.ID, handle.Location)
	if err != nil {
		return jobs.Status{}, fmt.Errorf("failed to get job %q: %w", handle.ID, err)
	}

	if status := job.LastStatus(); status != nil {
		return toJobStatus(status), nil
	}

	status, err := job.Status(ctx)
	if err != nil {
		return jobs.Status{}, fmt.Errorf("failed to get status for job %q: %w", handle.ID, err)
	}

	return toJobStatus(status), nil
}
