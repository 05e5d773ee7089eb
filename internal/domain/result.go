package domain

import (
	"fmt"
	"time"
)

// MaxReading identifies the hottest city of the survey.
type MaxReading struct {
	Value float64 `json:"value"`
	City  int     `json:"city"`
}

// SurveyResult is derived once, after all readings are collected.
type SurveyResult struct {
	Average             float64    `json:"average"`
	CountAboveThreshold int        `json:"count_above_threshold"`
	Max                 MaxReading `json:"max"`
	Readings            []float64  `json:"readings"`
	CompletedAt         time.Time  `json:"completed_at"`
}

// Aggregator keeps the running sum, count above threshold and maximum over
// readings added in city order. The zero value is ready to use.
type Aggregator struct {
	readings [CityCount]Reading
	n        int
	sum      float64
	above    int
	max      Reading
}

// Add folds the next reading. Readings must arrive in city order 1..CityCount.
func (a *Aggregator) Add(r Reading) error {
	if a.n >= CityCount {
		return fmt.Errorf("add reading for city %d: survey already has %d readings", r.City(), CityCount)
	}
	if r.City() != a.n+1 {
		return fmt.Errorf("add reading for city %d: expected city %d: %w", r.City(), a.n+1, ErrInvalidCity)
	}

	a.readings[a.n] = r
	a.n++
	a.sum += r.Value()
	if r.AboveThreshold() {
		a.above++
	}
	// Strict ">" keeps the earliest city on ties.
	if a.n == 1 || r.Value() > a.max.Value() {
		a.max = r
	}
	return nil
}

// Len returns how many readings have been added.
func (a *Aggregator) Len() int { return a.n }

// Complete reports whether every city has a reading.
func (a *Aggregator) Complete() bool { return a.n == CityCount }

// Result computes the SurveyResult. It fails until every city has reported.
func (a *Aggregator) Result() (SurveyResult, error) {
	if !a.Complete() {
		return SurveyResult{}, fmt.Errorf("survey incomplete: %d of %d readings", a.n, CityCount)
	}

	values := make([]float64, CityCount)
	for i, r := range a.readings {
		values[i] = r.Value()
	}

	return SurveyResult{
		Average:             a.sum / CityCount,
		CountAboveThreshold: a.above,
		Max:                 MaxReading{Value: a.max.Value(), City: a.max.City()},
		Readings:            values,
		CompletedAt:         clock.Now(),
	}, nil
}
