package units

import (
	"math"
	"testing"
)

func approx(t *testing.T, label string, got, want, atol float64) {
	t.Helper()
	if math.Abs(got-want) > atol {
		t.Errorf("%s: got %g, want %g", label, got, want)
	}
}

func TestConversions(t *testing.T) {
	approx(t, "FeetToMeters", FeetToMeters(36089.2), 11000, 0.05)
	approx(t, "MetersToFeet", MetersToFeet(11000), 36089.2, 0.1)
	approx(t, "KnotsToMS", KnotsToMS(250), 128.611, 0.001)
	approx(t, "MSToKnots", MSToKnots(128.611), 250, 0.001)
	approx(t, "MetersToNM", MetersToNM(1852), 1, 1e-9)
	approx(t, "CelsiusToKelvin", CelsiusToKelvin(15), 288.15, 1e-9)
	approx(t, "KelvinToCelsius", KelvinToCelsius(216.65), -56.5, 1e-9)
	approx(t, "PascalsToHPa", PascalsToHPa(101325), 1013.25, 1e-9)
	approx(t, "PascalsToInHg", PascalsToInHg(101325), 29.92, 0.01)
}

func TestRoundTrips(t *testing.T) {
	for _, v := range []float64{0, 1, 128.611, 36089.2} {
		approx(t, "feet round trip", MetersToFeet(FeetToMeters(v)), v, 1e-9)
		approx(t, "knots round trip", MSToKnots(KnotsToMS(v)), v, 1e-9)
	}
}

func TestMetersToFlightLevel(t *testing.T) {
	tests := []struct {
		name string
		m    float64
		want int
	}{
		{"sea level", 0, 0},
		{"tropopause", 11000, 360},
		{"typical cruise", 10668, 350},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MetersToFlightLevel(tc.m); got != tc.want {
				t.Errorf("MetersToFlightLevel(%g) = %d, want %d", tc.m, got, tc.want)
			}
		})
	}
}
