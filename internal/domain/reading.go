package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Survey constants. None of them are configurable.
const (
	CityCount      = 10
	MinTemperature = 20.0
	MaxTemperature = 50.0
	Threshold      = 40.0
)

var (
	// ErrOutOfRange reports a value outside [MinTemperature, MaxTemperature].
	ErrOutOfRange = errors.New("temperature out of range")

	// ErrMalformedInput reports a token that is not a number.
	ErrMalformedInput = errors.New("temperature is not a number")

	// ErrInputExhausted reports that input ended before every city reported.
	ErrInputExhausted = errors.New("input ended before all readings were collected")

	// ErrInvalidCity reports a city index outside 1..CityCount.
	ErrInvalidCity = errors.New("city index out of range")
)

// Reading is one accepted temperature bound to its 1-based city index.
// The zero value is not a valid reading; use NewReading.
type Reading struct {
	city  int
	value float64
}

// NewReading validates value for the given city.
func NewReading(city int, value float64) (Reading, error) {
	if city < 1 || city > CityCount {
		return Reading{}, fmt.Errorf("city %d: %w", city, ErrInvalidCity)
	}
	// Written as a positive range check so NaN is rejected too.
	if !(value >= MinTemperature && value <= MaxTemperature) {
		return Reading{}, fmt.Errorf("%g: %w", value, ErrOutOfRange)
	}
	return Reading{city: city, value: value}, nil
}

// City returns the 1-based city index.
func (r Reading) City() int { return r.city }

// Value returns the temperature in degrees Celsius.
func (r Reading) Value() float64 { return r.value }

// AboveThreshold reports whether the reading is strictly above Threshold.
func (r Reading) AboveThreshold() bool { return r.value > Threshold }

// ParseTemperature converts one input token into a float.
func ParseTemperature(token string) (float64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("empty input: %w", ErrMalformedInput)
	}
	v, err := strconv.ParseFloat(token, 64)
	if errors.Is(err, strconv.ErrRange) {
		// Overflow yields ±Inf and underflow yields 0; the range check rejects both.
		return v, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%q: %w", token, ErrMalformedInput)
	}
	return v, nil
}

// CorrectiveMessage returns the line shown to the user after a rejected input.
func CorrectiveMessage(err error) string {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return "Please enter a numeric value."
	default:
		return fmt.Sprintf("Please enter a value between %g and %g.", MinTemperature, MaxTemperature)
	}
}

// RejectReason maps a validation error to a short label for logs and metrics.
func RejectReason(err error) string {
	if errors.Is(err, ErrMalformedInput) {
		return "malformed"
	}
	return "out_of_range"
}
