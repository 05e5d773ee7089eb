package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/temperature-survey/internal/config"
	"github.com/couchcryptid/temperature-survey/internal/domain"
)

// TextReporter writes the three result lines. It implements survey.Reporter.
type TextReporter struct {
	out io.Writer
}

// NewTextReporter creates a TextReporter on out.
func NewTextReporter(out io.Writer) *TextReporter {
	return &TextReporter{out: out}
}

func (r *TextReporter) Report(_ context.Context, result domain.SurveyResult) error {
	_, err := fmt.Fprintf(r.out,
		"The average of the maximum temperatures is: %f\n"+
			"The number of cities with temperatures over %g degrees is: %d\n"+
			"The maximum temperature of the summer is: %f in city %d\n",
		result.Average,
		domain.Threshold, result.CountAboveThreshold,
		result.Max.Value, result.Max.City,
	)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// JSONReporter writes the result as a single JSON object.
type JSONReporter struct {
	out io.Writer
}

// NewJSONReporter creates a JSONReporter on out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out}
}

func (r *JSONReporter) Report(_ context.Context, result domain.SurveyResult) error {
	if err := json.NewEncoder(r.out).Encode(result); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// Reporter is the subset of survey.Reporter the constructors below return.
type Reporter interface {
	Report(ctx context.Context, result domain.SurveyResult) error
}

// NewReporter picks the reporter for a REPORT_FORMAT value.
func NewReporter(format string, out io.Writer) Reporter {
	if format == config.ReportJSON {
		return NewJSONReporter(out)
	}
	return NewTextReporter(out)
}
