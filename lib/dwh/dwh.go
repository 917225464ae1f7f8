package dwh

import (
	"context"

	"github.com/artie-labs/dedupe/clients/bigquery/dialect"
	"github.com/artie-labs/dedupe/lib/jobs"
)

// Warehouse is where dedupe jobs run.
type Warehouse interface {
	// GetTable returns an error wrapping ErrTableNotFound from clients/bigquery when the table does not exist.
	GetTable(ctx context.Context, tableID dialect.TableIdentifier) error
	// Query submits [query] under [jobID] and returns as soon as the job is accepted.
	Query(ctx context.Context, query string, jobID string) (jobs.Handle, error)
	GetJob(ctx context.Context, handle jobs.Handle) (jobs.Status, error)
}

type Uploader interface {
	Upload(ctx context.Context, bucket, prefix, name, contentType string, data []byte) (string, error)
}
