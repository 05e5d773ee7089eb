// Package domain models a summer temperature survey across a fixed set of cities.
//
// # Survey Rules
//
// Exactly [CityCount] cities are surveyed, numbered from 1. Each city reports
// one maximum summer temperature in degrees Celsius:
//
//	valid range:  MinTemperature <= v <= MaxTemperature   (20..50, inclusive)
//	threshold:    v > Threshold counts as a hot city        (strictly above 40)
//
// A value outside the range is never accepted; callers re-prompt until a valid
// value arrives. NaN and infinities fail the range check like any other
// out-of-range value.
//
// # Aggregation
//
// [Aggregator] folds readings in city order in a single pass:
//
//	average  = sum / CityCount
//	count    = readings strictly above Threshold
//	max      = first city holding the highest value (strict ">" replaces)
//
// The tie-break matters: if cities 2 and 7 both report 45 and nothing is
// higher, the maximum is reported for city 2.
package domain
