package logger

import (
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/artie-labs/dedupe/lib/config"
)

func level(settings *config.Settings) slog.Level {
	if settings != nil && !settings.Quiet {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func NewLogger(settings *config.Settings) (*slog.Logger, bool) {
	handler := slog.Handler(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   level(settings),
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))

	var loggingToSentry bool
	if settings != nil && settings.Config.Reporting.Sentry != nil && settings.Config.Reporting.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: settings.Config.Reporting.Sentry.DSN}); err != nil {
			slog.New(handler).Warn("Failed to enable Sentry output", slog.Any("err", err))
		} else {
			handler = slogmulti.Fanout(
				handler,
				slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
			)
			loggingToSentry = true
		}
	}

	return slog.New(handler), loggingToSentry
}

func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}
