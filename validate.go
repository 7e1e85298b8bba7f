package ggchart

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is wrapped by every RangeError.
var ErrOutOfRange = errors.New("ggchart: value out of range")

// RangeError reports a plotted value outside [0, Max].
type RangeError struct {
	Chart string
	Index int
	Value float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ggchart: %s chart record %d: value %g outside [0, %g]", e.Chart, e.Index, e.Value, e.Max)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// ValidatePeriods checks that every ratio lies in [0, PeriodAxisMax].
// All violations are returned joined; use errors.As to get the first.
func ValidatePeriods(records []PeriodRecord) error {
	var errs []error
	for i, r := range records {
		if !inRange(r.Ratio, PeriodAxisMax) {
			errs = append(errs, &RangeError{Chart: periodChart.name, Index: i, Value: r.Ratio, Max: PeriodAxisMax})
		}
	}
	return errors.Join(errs...)
}

// ValidateInstruments checks that every percentage lies in
// [0, InstrumentAxisMax].
func ValidateInstruments(records []InstrumentRecord) error {
	var errs []error
	for i, r := range records {
		if !inRange(r.OBPercent, InstrumentAxisMax) {
			errs = append(errs, &RangeError{Chart: instrumentChart.name, Index: i, Value: r.OBPercent, Max: InstrumentAxisMax})
		}
	}
	return errors.Join(errs...)
}

func inRange(v, hi float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= hi
}
