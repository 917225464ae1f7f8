package bigquery

import (
	"cloud.google.com/go/bigquery"

	"github.com/artie-labs/dedupe/lib/jobs"
)

func toJobState(state bigquery.State) jobs.State {
	switch state {
	case bigquery.Pending:
		return jobs.Pending
	case bigquery.Running:
		return jobs.Running
	case bigquery.Done:
		return jobs.Done
	default:
		return jobs.Unknown
	}
}

func toJobStatus(status *bigquery.JobStatus) jobs.Status {
	if status == nil {
		return jobs.Status{State: jobs.Unknown}
	}

	return jobs.Status{State: toJobState(status.State), Err: status.Err()}
}
