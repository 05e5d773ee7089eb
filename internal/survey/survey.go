package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/temperature-survey/internal/domain"
	"github.com/couchcryptid/temperature-survey/internal/observability"
)

// Prompter asks for a city's temperature and shows corrective messages.
type Prompter interface {
	Prompt(ctx context.Context, city int) (string, error)
	Correct(ctx context.Context, msg string) error
}

// Reporter emits the final survey result.
type Reporter interface {
	Report(ctx context.Context, result domain.SurveyResult) error
}

// Survey collects one validated reading per city and reports the aggregate.
type Survey struct {
	prompter Prompter
	reporter Reporter
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Survey with the given collaborators and observability.
func New(p Prompter, r Reporter, logger *slog.Logger, metrics *observability.Metrics) *Survey {
	return &Survey{
		prompter: p,
		reporter: r,
		logger:   logger,
		metrics:  metrics,
	}
}

// CollectReading prompts for city until a value in the valid range is entered.
// Rejected inputs are corrected and re-prompted without limit; only
// collaborator failures end the loop.
func (s *Survey) CollectReading(ctx context.Context, city int) (domain.Reading, error) {
	for {
		token, err := s.prompter.Prompt(ctx, city)
		if err != nil {
			return domain.Reading{}, err
		}

		reading, err := parseReading(city, token)
		if err == nil {
			s.metrics.ReadingsAccepted.Inc()
			return reading, nil
		}
		if !errors.Is(err, domain.ErrOutOfRange) && !errors.Is(err, domain.ErrMalformedInput) {
			return domain.Reading{}, err
		}

		reason := domain.RejectReason(err)
		s.logger.Debug("reading rejected", "city", city, "input", token, "reason", reason)
		s.metrics.ReadingsRejected.WithLabelValues(reason).Inc()
		if err := s.prompter.Correct(ctx, domain.CorrectiveMessage(err)); err != nil {
			return domain.Reading{}, err
		}
	}
}

// Run collects every city in order, then reports and returns the result.
func (s *Survey) Run(ctx context.Context) (domain.SurveyResult, error) {
	start := domain.Now()
	s.logger.Info("survey started", "cities", domain.CityCount)

	var agg domain.Aggregator
	for city := 1; city <= domain.CityCount; city++ {
		reading, err := s.CollectReading(ctx, city)
		if err != nil {
			return domain.SurveyResult{}, fmt.Errorf("collect reading for city %d: %w", city, err)
		}
		if err := agg.Add(reading); err != nil {
			return domain.SurveyResult{}, err
		}
	}

	result, err := agg.Result()
	if err != nil {
		return domain.SurveyResult{}, err
	}

	s.metrics.SurveysCompleted.Inc()
	s.metrics.SurveyDuration.Observe(result.CompletedAt.Sub(start).Seconds())
	s.metrics.LastAverage.Set(result.Average)

	if err := s.reporter.Report(ctx, result); err != nil {
		return result, fmt.Errorf("report result: %w", err)
	}

	s.logger.Info("survey complete",
		"average", result.Average,
		"count_above_threshold", result.CountAboveThreshold,
		"max", result.Max.Value,
		"max_city", result.Max.City,
	)
	return result, nil
}

func parseReading(city int, token string) (domain.Reading, error) {
	v, err := domain.ParseTemperature(token)
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.NewReading(city, v)
}
