package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/dedupe/lib/config/constants"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type BigQuery struct {
	// PathToCredentials is _optional_ if you have GOOGLE_APPLICATION_CREDENTIALS set as an env var
	// Links to credentials: https://cloud.google.com/docs/authentication/application-default-credentials#GAC
	PathToCredentials string `yaml:"pathToCredentials"`
	// Location is where jobs are submitted, leave empty to let BigQuery pick it from the dataset.
	Location string `yaml:"location"`
}

// Report is where the run report gets uploaded, an empty bucket disables it.
type Report struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
}

func (r Report) Enabled() bool {
	return r.Bucket != ""
}

type Config struct {
	BigQuery BigQuery `yaml:"bigquery"`
	Report   Report   `yaml:"report"`

	Reporting struct {
		Sentry *Sentry `yaml:"sentry"`
	} `yaml:"reporting"`

	Telemetry struct {
		Metrics struct {
			Provider constants.ExporterKind `yaml:"provider"`
			Settings map[string]any         `yaml:"settings,omitempty"`
		} `yaml:"metrics"`
	} `yaml:"telemetry"`
}

func readFileToConfig(pathToConfig string) (*Config, error) {
	bytes, err := os.ReadFile(pathToConfig)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	return &config, nil
}

func (c Config) Validate() error {
	if c.Telemetry.Metrics.Provider != "" && c.Telemetry.Metrics.Provider != constants.Datadog {
		return fmt.Errorf("config is invalid, metrics provider: %q is not supported", c.Telemetry.Metrics.Provider)
	}

	if c.Report.Prefix != "" && c.Report.Bucket == "" {
		return fmt.Errorf("config is invalid, report prefix %q is set without a bucket", c.Report.Prefix)
	}

	return nil
}
