package datadog

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/artie-labs/dedupe/lib/maputil"
	"github.com/artie-labs/dedupe/lib/stringutil"
	"github.com/artie-labs/dedupe/lib/telemetry/metrics/base"
)

// Keys under telemetry.metrics.settings.
const (
	Tags        = "tags"
	Sampling    = "sampling"
	Namespace   = "namespace"
	DatadogAddr = "addr"
)

const (
	// Dedupe runs are short and rare, so nothing is sampled out by default.
	DefaultSampleRate = 1
	DefaultNamespace  = "dedupe."
	DefaultAddr       = "127.0.0.1:8125"
	// DefaultServiceTag is attached to every metric unless a service tag is configured.
	DefaultServiceTag = "service:dedupe"
)

type clientSettings struct {
	addr       string
	namespace  string
	tags       []string
	sampleRate float64
}

func parseSettings(settings map[string]any) clientSettings {
	parsed := clientSettings{
		addr:       fmt.Sprint(maputil.GetKeyFromMap(settings, DatadogAddr, DefaultAddr)),
		namespace:  fmt.Sprint(maputil.GetKeyFromMap(settings, Namespace, DefaultNamespace)),
		tags:       withServiceTag(getTags(maputil.GetKeyFromMap(settings, Tags, nil))),
		sampleRate: getSampleRate(maputil.GetKeyFromMap(settings, Sampling, DefaultSampleRate)),
	}

	// The agent address can be injected by the job runner.
	host := os.Getenv("TELEMETRY_HOST")
	port := os.Getenv("TELEMETRY_PORT")
	if !stringutil.Empty(host, port) {
		parsed.addr = fmt.Sprintf("%s:%s", host, port)
		slog.Info("Overriding telemetry address with env vars", slog.String("address", parsed.addr))
	}

	return parsed
}

func withServiceTag(tags []string) []string {
	for _, tag := range tags {
		if strings.HasPrefix(tag, "service:") {
			return tags
		}
	}

	return append(tags, DefaultServiceTag)
}

// getSampleRate falls back to [DefaultSampleRate] unless [val] parses to a rate within (0, 1].
func getSampleRate(val any) float64 {
	floatVal, err := strconv.ParseFloat(fmt.Sprint(val), 64)
	if err != nil {
		return DefaultSampleRate
	}

	if floatVal > 1 || floatVal <= 0 {
		return DefaultSampleRate
	}

	return floatVal
}

func NewDatadogClient(settings map[string]any) (base.Client, error) {
	parsed := parseSettings(settings)
	datadogClient, err := statsd.New(parsed.addr,
		statsd.WithNamespace(parsed.namespace),
		statsd.WithTags(parsed.tags),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create statsd client for %q: %w", parsed.addr, err)
	}

	return &statsClient{
		client: datadogClient,
		rate:   parsed.sampleRate,
	}, nil
}

type statsClient struct {
	client *statsd.Client
	rate   float64
}

func (s *statsClient) Timing(name string, value time.Duration, tags map[string]string) {
	_ = s.client.Timing(name, value, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Incr(name string, tags map[string]string) {
	_ = s.client.Incr(name, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Count(name string, value int64, tags map[string]string) {
	_ = s.client.Count(name, value, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Gauge(name string, value float64, tags map[string]string) {
	_ = s.client.Gauge(name, value, toDatadogTags(tags), s.rate)
}
