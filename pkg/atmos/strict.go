package atmos

import (
	"errors"
	"fmt"
)

// ErrOutOfDomain reports an input outside the physically meaningful
// range of a computation (absolute temperature at or below zero,
// non-positive pressure, negative speed).
var ErrOutOfDomain = errors.New("input out of physical domain")

// The Strict variants validate inputs up front and return an error
// wrapping ErrOutOfDomain instead of letting NaN or Inf propagate.
// On valid input they return exactly the same value as the permissive
// function. They are an additive safety layer; the permissive
// functions remain the primary surface.

// StrictTemperature is Temperature with domain validation: the
// resulting absolute temperature must be positive.
func StrictTemperature(hp, deltaT float64) (float64, error) {
	t := Temperature(hp, deltaT)
	if t <= 0 {
		return 0, fmt.Errorf("temperature at %g m with offset %g K is %g K: %w", hp, deltaT, t, ErrOutOfDomain)
	}
	return t, nil
}

// StrictPressure is Pressure with domain validation: the offset
// temperature profile at hp must stay above absolute zero for the
// inputs to describe a physical atmosphere.
func StrictPressure(hp, deltaT float64) (float64, error) {
	if t := Temperature(hp, deltaT); t <= 0 {
		return 0, fmt.Errorf("temperature at %g m with offset %g K is %g K: %w", hp, deltaT, t, ErrOutOfDomain)
	}
	return Pressure(hp, deltaT), nil
}

// StrictDensity is Density with domain validation.
func StrictDensity(p, t float64) (float64, error) {
	if t <= 0 {
		return 0, fmt.Errorf("density at temperature %g K: %w", t, ErrOutOfDomain)
	}
	if p < 0 {
		return 0, fmt.Errorf("density at pressure %g Pa: %w", p, ErrOutOfDomain)
	}
	return Density(p, t), nil
}

// StrictSpeedOfSound is SpeedOfSound with domain validation.
func StrictSpeedOfSound(t float64) (float64, error) {
	if t <= 0 {
		return 0, fmt.Errorf("speed of sound at temperature %g K: %w", t, ErrOutOfDomain)
	}
	return SpeedOfSound(t), nil
}

// StrictConditions is NewConditions with domain validation of the
// whole chain before any computation proceeds.
func StrictConditions(hp, deltaT float64) (Conditions, error) {
	if _, err := StrictTemperature(hp, deltaT); err != nil {
		return Conditions{}, err
	}
	if _, err := StrictPressure(hp, deltaT); err != nil {
		return Conditions{}, err
	}
	return NewConditions(hp, deltaT), nil
}

// StrictCASToTAS is CASToTAS with domain validation.
func StrictCASToTAS(vcas, p, t float64) (float64, error) {
	if err := checkAirspeedDomain(vcas, p, t); err != nil {
		return 0, err
	}
	return CASToTAS(vcas, p, t), nil
}

// StrictTASToCAS is TASToCAS with domain validation.
func StrictTASToCAS(vtas, p, t float64) (float64, error) {
	if err := checkAirspeedDomain(vtas, p, t); err != nil {
		return 0, err
	}
	return TASToCAS(vtas, p, t), nil
}

func checkAirspeedDomain(v, p, t float64) error {
	if v < 0 {
		return fmt.Errorf("airspeed %g m/s: %w", v, ErrOutOfDomain)
	}
	if p <= 0 {
		return fmt.Errorf("pressure %g Pa: %w", p, ErrOutOfDomain)
	}
	if t <= 0 {
		return fmt.Errorf("temperature %g K: %w", t, ErrOutOfDomain)
	}
	return nil
}
