package atmos

// Conditions is an immutable snapshot of the atmospheric state at one
// altitude and temperature offset. Build it with NewConditions; a
// change in altitude or offset means a new snapshot, never a mutation.
// It is a plain value, safe to copy and to share between goroutines.
type Conditions struct {
	Hp     float64 // Geopotential pressure altitude (m)
	DeltaT float64 // Temperature offset used (K)
	T      float64 // Temperature (K)
	P      float64 // Pressure (Pa)
	Rho    float64 // Density (kg/m^3)
	A      float64 // Speed of sound (m/s)
}

// NewConditions computes the full atmospheric state at geopotential
// pressure altitude hp (m) with temperature offset deltaT (K). Each
// quantity is derived from the previous one: temperature and pressure
// from the altitude, density from the resulting pair, speed of sound
// from the resulting temperature.
func NewConditions(hp, deltaT float64) Conditions {
	t := Temperature(hp, deltaT)
	p := Pressure(hp, deltaT)
	return Conditions{
		Hp:     hp,
		DeltaT: deltaT,
		T:      t,
		P:      p,
		Rho:    Density(p, t),
		A:      SpeedOfSound(t),
	}
}

// The methods below are the snapshot-bound form of the package-level
// conversion functions: same formulas, argument binding convenience
// only. The Mach conversions reuse the stored speed of sound rather
// than recomputing it from T.

// CASToTAS converts calibrated airspeed vcas (m/s) to true airspeed
// at these conditions.
func (c Conditions) CASToTAS(vcas float64) float64 {
	return CASToTAS(vcas, c.P, c.T)
}

// TASToCAS converts true airspeed vtas (m/s) to calibrated airspeed
// at these conditions.
func (c Conditions) TASToCAS(vtas float64) float64 {
	return TASToCAS(vtas, c.P, c.T)
}

// MachToTAS converts Mach number m to true airspeed at these
// conditions.
func (c Conditions) MachToTAS(m float64) float64 {
	return m * c.A
}

// TASToMach converts true airspeed vtas (m/s) to Mach number at these
// conditions.
func (c Conditions) TASToMach(vtas float64) float64 {
	return vtas / c.A
}

// MachToCAS converts Mach number m to calibrated airspeed at these
// conditions.
func (c Conditions) MachToCAS(m float64) float64 {
	return c.TASToCAS(c.MachToTAS(m))
}

// CASToMach converts calibrated airspeed vcas (m/s) to Mach number at
// these conditions.
func (c Conditions) CASToMach(vcas float64) float64 {
	return c.TASToMach(c.CASToTAS(vcas))
}
