package atmos

// ISA sea-level reference values and model constants.
// These are the exact published values; downstream results are only
// bit-compatible if these are not rounded.
const (
	T0   = 288.15   // Sea-level standard temperature (K)
	P0   = 101325.0 // Sea-level standard pressure (Pa)
	Rho0 = 1.225    // Sea-level standard density (kg/m^3)
	A0   = 340.294  // Sea-level standard speed of sound (m/s)

	Kappa = 1.4                 // Adiabatic index of air
	Mu    = (Kappa - 1) / Kappa // (kappa-1)/kappa, the airspeed-equation exponent

	R  = 287.05287 // Specific gas constant for air (m^2/(K*s^2))
	G0 = 9.80665   // Gravitational acceleration (m/s^2)

	BetaT         = -0.0065 // Temperature lapse rate below the tropopause (K/m)
	TropopauseAlt = 11000.0 // Tropopause geopotential pressure altitude (m)
)
