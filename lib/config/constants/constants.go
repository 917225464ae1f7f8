package constants

const (
	Version = "dedupe 0.1"

	// JobIDPrefix is prepended to every dedupe job ID so they can be found in the console.
	JobIDPrefix = "dedupe"
)

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)
