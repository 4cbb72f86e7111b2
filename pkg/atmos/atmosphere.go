package atmos

import (
	"math"
)

// Temperature returns the air temperature in K at geopotential pressure
// altitude hp (m) with temperature offset deltaT (K, 0 for a standard
// day). Above the tropopause the temperature is constant: both the
// lapse and the offset are applied at the tropopause altitude.
func Temperature(hp, deltaT float64) float64 {
	if hp <= TropopauseAlt {
		return T0 + deltaT + BetaT*hp
	}
	return T0 + deltaT + BetaT*TropopauseAlt
}

// Pressure returns the static pressure in Pa at geopotential pressure
// altitude hp (m) with temperature offset deltaT (K).
//
// The troposphere formula raises the offset-free temperature ratio to
// the barometric exponent: deltaT is subtracted back out of
// Temperature before forming the ratio. Only the lapse-rate component
// drives pressure; this asymmetry is how the standard defines it, do
// not "fix" it.
func Pressure(hp, deltaT float64) float64 {
	if hp <= TropopauseAlt {
		return P0 * math.Pow((Temperature(hp, deltaT)-deltaT)/T0, -G0/(BetaT*R))
	}
	// Isothermal layer: barometric formula anchored at the tropopause.
	// The exponent uses the standard tropopause temperature, keeping
	// the whole pressure profile a function of altitude alone.
	pTrop := P0 * math.Pow((Temperature(TropopauseAlt, deltaT)-deltaT)/T0, -G0/(BetaT*R))
	return pTrop * math.Exp(-G0/(R*Temperature(TropopauseAlt, 0))*(hp-TropopauseAlt))
}

// Density returns the air density in kg/m^3 from pressure p (Pa) and
// temperature t (K) via the ideal gas law.
func Density(p, t float64) float64 {
	return p / (R * t)
}

// SpeedOfSound returns the local speed of sound in m/s at temperature
// t (K). For t <= 0 the square root yields NaN, which propagates.
func SpeedOfSound(t float64) float64 {
	return math.Sqrt(Kappa * R * t)
}

// --- Normalized ratios ---
// Aerodynamic formulas downstream consume these rather than absolute
// values.

// Theta returns the temperature ratio t/T0.
func Theta(t float64) float64 {
	return t / T0
}

// Delta returns the pressure ratio p/P0.
func Delta(p float64) float64 {
	return p / P0
}

// Sigma returns the density ratio rho/Rho0.
func Sigma(rho float64) float64 {
	return rho / Rho0
}
