// Package fundargs evaluates the fundamental mean angular arguments of the
// IERS Conventions (2003): the Delaunay arguments of lunisolar theory, the
// mean longitudes of the planets, and the general accumulated precession in
// longitude.
//
// Every function takes t, Julian centuries of TDB since J2000.0; TT is an
// acceptable substitute at these accuracies. The lunisolar arguments are
// polynomials in arcseconds reduced modulo a full turn before conversion to
// radians, which preserves precision at large t. The planetary longitudes
// are linear expressions evaluated directly in radians and reduced mod 2pi;
// consumers that need a normalized standalone angle re-normalize themselves.
package fundargs

import (
	"math"

	"github.com/orient/orientgo/internal/units"
)

// MoonAnomaly returns the mean anomaly of the Moon (l), radians.
func MoonAnomaly(t float64) float64 {
	a := 485868.249036 +
		t*(1717915923.2178+
			t*(31.8792+
				t*(0.051635+
					t*(-0.00024470))))
	return math.Mod(a, units.ArcsecPerTurn) * units.ArcsecToRad
}

// SunAnomaly returns the mean anomaly of the Sun (l'), radians.
func SunAnomaly(t float64) float64 {
	a := 1287104.793048 +
		t*(129596581.0481+
			t*(-0.5532+
				t*(0.000136+
					t*(-0.00001149))))
	return math.Mod(a, units.ArcsecPerTurn) * units.ArcsecToRad
}

// MoonLongitudeMinusNode returns the mean longitude of the Moon minus that of
// its ascending node (F), radians.
func MoonLongitudeMinusNode(t float64) float64 {
	a := 335779.526232 +
		t*(1739527262.8478+
			t*(-12.7512+
				t*(-0.001037+
					t*(0.00000417))))
	return math.Mod(a, units.ArcsecPerTurn) * units.ArcsecToRad
}

// MoonElongation returns the mean elongation of the Moon from the Sun (D),
// radians.
func MoonElongation(t float64) float64 {
	a := 1072260.703692 +
		t*(1602961601.2090+
			t*(-6.3706+
				t*(0.006593+
					t*(-0.00003169))))
	return math.Mod(a, units.ArcsecPerTurn) * units.ArcsecToRad
}

// MoonNode returns the mean longitude of the Moon's ascending node (Omega),
// radians.
func MoonNode(t float64) float64 {
	a := 450160.398036 +
		t*(-6962890.5431+
			t*(7.4722+
				t*(0.007702+
					t*(-0.00005939))))
	return math.Mod(a, units.ArcsecPerTurn) * units.ArcsecToRad
}

// Mercury returns the mean longitude of Mercury, radians.
func Mercury(t float64) float64 {
	return math.Mod(4.402608842+2608.7903141574*t, twoPi)
}

// Venus returns the mean longitude of Venus, radians.
func Venus(t float64) float64 {
	return math.Mod(3.176146697+1021.3285546211*t, twoPi)
}

// Earth returns the mean longitude of Earth, radians.
func Earth(t float64) float64 {
	return math.Mod(1.753470314+628.3075849991*t, twoPi)
}

// Mars returns the mean longitude of Mars, radians.
func Mars(t float64) float64 {
	return math.Mod(6.203480913+334.0612426700*t, twoPi)
}

// Jupiter returns the mean longitude of Jupiter, radians.
func Jupiter(t float64) float64 {
	return math.Mod(0.599546497+52.9690962641*t, twoPi)
}

// Saturn returns the mean longitude of Saturn, radians.
func Saturn(t float64) float64 {
	return math.Mod(0.874016757+21.3299104960*t, twoPi)
}

// Uranus returns the mean longitude of Uranus, radians.
func Uranus(t float64) float64 {
	return math.Mod(5.481293872+7.4781598567*t, twoPi)
}

// GeneralPrecession returns the general accumulated precession in longitude,
// radians.
func GeneralPrecession(t float64) float64 {
	return (0.024381750 + 0.00000538691*t) * t
}

const twoPi = 2.0 * math.Pi
