// Command survey asks for the maximum summer temperature of ten cities on
// stdin, then prints their average, how many exceeded 40 degrees, and the
// hottest city.
//
// Usage:
//
//	go run ./cmd/survey
//	printf '25 30 41 42 20 50 35 40.5 41 22\n' | PROMPT_MODE=never go run ./cmd/survey
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/temperature-survey/internal/adapter/console"
	"github.com/couchcryptid/temperature-survey/internal/config"
	"github.com/couchcryptid/temperature-survey/internal/observability"
	"github.com/couchcryptid/temperature-survey/internal/survey"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if code := run(context.Background(), cfg, os.Stdin, os.Stdout, logger, metrics); code != 0 {
		os.Exit(code)
	}
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger, metrics *observability.Metrics) int {
	prompter := console.NewPrompter(in, out, console.PromptsEnabled(cfg.PromptMode, in))
	reporter := console.NewReporter(cfg.ReportFormat, out)

	s := survey.New(prompter, reporter, logger, metrics)

	code := 0
	if _, err := s.Run(ctx); err != nil {
		logger.Error("survey failed", "error", err)
		code = 1
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Error("metrics export failed", "error", err, "path", cfg.MetricsTextfile)
		}
	}
	return code
}
