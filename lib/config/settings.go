package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/artie-labs/dedupe/lib/config/constants"
	"github.com/artie-labs/dedupe/lib/daterange"
)

// InfoRequest is returned by [LoadSettings] when --help or --version was passed.
// Message is what should be printed before exiting successfully.
type InfoRequest struct {
	Message string
}

func (i InfoRequest) Error() string {
	return i.Message
}

// Dedupe is what the orchestrator needs to know to run.
type Dedupe struct {
	Project     string
	Dataset     string
	TableSuffix string
	StartDate   string
	EndDate     string

	Wait                bool
	DryRun              bool
	PollInterval        time.Duration
	Timeout             time.Duration
	MaxSubmitsPerSecond float64
}

type Settings struct {
	Config Config
	Dedupe Dedupe
	// Quiet suppresses debug lines, it is on unless --quiet=false is passed.
	Quiet bool
}

type options struct {
	Project     string `short:"p" long:"project" description:"gcp project" default:"ltv-modeling-user"`
	StartDate   string `long:"start_date" description:"inclusive start date of table suffix" default:"20200101"`
	EndDate     string `long:"end_date" description:"inclusive end date of table suffix" default:"20200102"`
	Dataset     string `long:"dataset" description:"big query dataset name" default:"ltv"`
	TableSuffix string `long:"table_suffix" description:"big query table name suffix" default:"ltv_"`
	Wait        bool   `short:"w" long:"wait" description:"wait until all jobs are done"`
	// go-flags does not allow a bool to default to true, so this one takes an optional value.
	Quiet string `short:"q" long:"quiet" description:"do not print debug lines" default:"true" optional:"yes" optional-value:"true"`

	ConfigFilePath      string        `short:"c" long:"config" description:"path to the config file"`
	PollInterval        time.Duration `long:"poll_interval" description:"how often to poll jobs while waiting" default:"60s"`
	Timeout             time.Duration `long:"timeout" description:"stop waiting after this long, 0 waits forever" default:"0s"`
	DryRun              bool          `long:"dry_run" description:"check tables and print queries without submitting them"`
	MaxSubmitsPerSecond float64       `long:"max_submits_per_second" description:"limit on job submissions per second, 0 disables it" default:"0"`
	Version             bool          `long:"version" description:"show version"`
}

// LoadSettings will take the flags (without the program name) and then parse.
func LoadSettings(args []string) (*Settings, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "dedupe"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, InfoRequest{Message: flagsErr.Message}
		}

		return nil, fmt.Errorf("failed to parse args: %w", err)
	}

	if opts.Version {
		return nil, InfoRequest{Message: constants.Version}
	}

	quiet, err := strconv.ParseBool(opts.Quiet)
	if err != nil {
		return nil, fmt.Errorf("failed to parse --quiet value %q: %w", opts.Quiet, err)
	}

	settings := &Settings{
		Quiet: quiet,
		Dedupe: Dedupe{
			Project:             opts.Project,
			Dataset:             opts.Dataset,
			TableSuffix:         opts.TableSuffix,
			StartDate:           opts.StartDate,
			EndDate:             opts.EndDate,
			Wait:                opts.Wait,
			DryRun:              opts.DryRun,
			PollInterval:        opts.PollInterval,
			Timeout:             opts.Timeout,
			MaxSubmitsPerSecond: opts.MaxSubmitsPerSecond,
		},
	}

	if opts.ConfigFilePath != "" {
		config, err := readFileToConfig(opts.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		settings.Config = *config
	}

	if err = settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate settings: %w", err)
	}

	return settings, nil
}

func (s Settings) Validate() error {
	if err := s.Dedupe.Validate(); err != nil {
		return err
	}

	return s.Config.Validate()
}

func (d Dedupe) Validate() error {
	if d.Project == "" || d.Dataset == "" {
		return fmt.Errorf("project and dataset are required, project: %q, dataset: %q", d.Project, d.Dataset)
	}

	// Identifiers end up inside a single pair of backticks in the query.
	for _, identifier := range []struct{ name, value string }{
		{"project", d.Project},
		{"dataset", d.Dataset},
		{"table suffix", d.TableSuffix},
	} {
		if strings.Contains(identifier.value, "`") {
			return fmt.Errorf("%s cannot contain a backtick: %q", identifier.name, identifier.value)
		}
	}

	if _, err := daterange.Parse(d.StartDate); err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}

	if _, err := daterange.Parse(d.EndDate); err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}

	if d.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got: %v", d.PollInterval)
	}

	if d.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative, got: %v", d.Timeout)
	}

	if d.MaxSubmitsPerSecond < 0 {
		return fmt.Errorf("max submits per second cannot be negative, got: %v", d.MaxSubmitsPerSecond)
	}

	return nil
}
