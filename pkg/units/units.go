package units

// Unit conversions between the SI values the atmos package works in
// and the aviation units instruments and charts use.

const (
	metersPerFoot = 0.3048
	metersPerNM   = 1852.0
	knotInMS      = metersPerNM / 3600.0 // 0.514444...
	pascalsPerHPa = 100.0
	pascalsToInHg = 0.0002953
	zeroCelsiusK  = 273.15
)

// FeetToMeters converts an altitude in feet to meters.
func FeetToMeters(ft float64) float64 {
	return ft * metersPerFoot
}

// MetersToFeet converts an altitude in meters to feet.
func MetersToFeet(m float64) float64 {
	return m / metersPerFoot
}

// KnotsToMS converts a speed in knots to m/s.
func KnotsToMS(kt float64) float64 {
	return kt * knotInMS
}

// MSToKnots converts a speed in m/s to knots.
func MSToKnots(ms float64) float64 {
	return ms / knotInMS
}

// MetersToNM converts a distance in meters to nautical miles.
func MetersToNM(m float64) float64 {
	return m / metersPerNM
}

// CelsiusToKelvin converts a temperature in Celsius to Kelvin.
func CelsiusToKelvin(c float64) float64 {
	return c + zeroCelsiusK
}

// KelvinToCelsius converts a temperature in Kelvin to Celsius.
func KelvinToCelsius(k float64) float64 {
	return k - zeroCelsiusK
}

// PascalsToHPa converts pressure to hectopascals, the QNH unit.
func PascalsToHPa(pa float64) float64 {
	return pa / pascalsPerHPa
}

// PascalsToInHg converts pressure to inches of mercury, the altimeter
// setting unit in US/Canadian airspace.
func PascalsToInHg(pa float64) float64 {
	return pa * pascalsToInHg
}

// MetersToFlightLevel returns the flight level (hundreds of feet) for
// a pressure altitude in meters, rounded down.
func MetersToFlightLevel(m float64) int {
	return int(MetersToFeet(m) / 100)
}
