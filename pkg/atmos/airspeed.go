package atmos

import (
	"math"
)

// Calibrated vs. true airspeed follows the compressible-flow relation
// between the dynamic pressure a pitot-static instrument sees
// (referenced to sea-level density and pressure) and the actual speed
// through the local air mass. The two directions are structural
// mirrors: the roles of (p, rho) and (P0, Rho0) swap.

// CASToTAS converts calibrated airspeed vcas (m/s) to true airspeed
// (m/s) at static pressure p (Pa) and temperature t (K).
func CASToTAS(vcas, p, t float64) float64 {
	rho := Density(p, t)
	inner := math.Pow(1+Mu*Rho0/(2*P0)*vcas*vcas, 1/Mu) - 1
	return math.Sqrt(2 * p / (Mu * rho) * (math.Pow(1+P0/p*inner, Mu) - 1))
}

// TASToCAS converts true airspeed vtas (m/s) to calibrated airspeed
// (m/s) at static pressure p (Pa) and temperature t (K).
func TASToCAS(vtas, p, t float64) float64 {
	rho := Density(p, t)
	inner := math.Pow(1+Mu*rho/(2*p)*vtas*vtas, 1/Mu) - 1
	return math.Sqrt(2 * P0 / (Mu * Rho0) * (math.Pow(1+p/P0*inner, Mu) - 1))
}

// MachToTAS converts Mach number m to true airspeed (m/s) at
// temperature t (K).
func MachToTAS(m, t float64) float64 {
	return m * SpeedOfSound(t)
}

// TASToMach converts true airspeed vtas (m/s) to Mach number at
// temperature t (K).
func TASToMach(vtas, t float64) float64 {
	return vtas / SpeedOfSound(t)
}

// MachToCAS converts Mach number m to calibrated airspeed (m/s) at
// static pressure p (Pa) and temperature t (K). Composition through
// true airspeed, not an independent formula.
func MachToCAS(m, p, t float64) float64 {
	return TASToCAS(MachToTAS(m, t), p, t)
}

// CASToMach converts calibrated airspeed vcas (m/s) to Mach number at
// static pressure p (Pa) and temperature t (K). Exact inverse pairing
// of MachToCAS.
func CASToMach(vcas, p, t float64) float64 {
	return TASToMach(CASToTAS(vcas, p, t), t)
}

// TransitionAltitude returns the geopotential pressure altitude (m) at
// which calibrated airspeed vcas (m/s) and Mach number m describe the
// same true airspeed, for temperature offset deltaT (K).
//
// Closed form under the troposphere lapse-rate model; the power-law
// pressure/temperature relation makes the inversion exact, no
// root-finding. Not valid above the tropopause, and not checked.
//
// deltaT is accepted for signature uniformity with the other
// altitude-profile functions but does not enter the result: pressure
// altitude is defined on the offset-free pressure profile.
func TransitionAltitude(vcas, m, deltaT float64) float64 {
	deltaTrans := (math.Pow(1+(Kappa-1)/2*(vcas/A0)*(vcas/A0), 1/Mu) - 1) /
		(math.Pow(1+(Kappa-1)/2*m*m, 1/Mu) - 1)
	thetaTrans := math.Pow(deltaTrans, -BetaT*R/G0)
	return T0 / BetaT * (thetaTrans - 1)
}
