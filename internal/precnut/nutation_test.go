package precnut

import (
	"math"
	"testing"
)

// The series is truncated, so agreement with the full MHB2000 values is at
// the few-milliarcsecond level rather than bit-exact.
func TestNutation06(t *testing.T) {
	dpsi, deps := Nutation06(2400000.5, 53736.0)

	if math.Abs(dpsi-(-0.9630912025820308797e-5)) > 5e-8 {
		t.Errorf("dpsi = %.19e, want about -0.9630912025820308797e-5", dpsi)
	}
	if math.Abs(deps-0.4063238496887249798e-4) > 5e-8 {
		t.Errorf("deps = %.19e, want about 0.4063238496887249798e-4", deps)
	}
}

func TestNutationMagnitudes(t *testing.T) {
	// Nutation in longitude stays within about +/-20 arcsec and in
	// obliquity within about +/-10 arcsec over any span of dates.
	const (
		maxPsi = 20.0 * math.Pi / 180.0 / 3600.0
		maxEps = 10.0 * math.Pi / 180.0 / 3600.0
	)
	for _, mjd := range []float64{41234.0, 47894.5, 53736.0, 58849.0, 60310.25} {
		dpsi, deps := Nutation(2400000.5, mjd)
		if math.Abs(dpsi) > maxPsi {
			t.Errorf("mjd %v: dpsi = %v, beyond plausible range", mjd, dpsi)
		}
		if math.Abs(deps) > maxEps {
			t.Errorf("mjd %v: deps = %v, beyond plausible range", mjd, deps)
		}
	}
}

// The IAU 2006 variant rescales the IAU 2000A values for the J2 secular
// rate; at J2000.0 the factor difference is only the fixed 0.4697e-6
// fraction of dpsi.
func TestNutation06Adjustment(t *testing.T) {
	dp, de := Nutation(2451545.0, 0.0)
	dp06, de06 := Nutation06(2451545.0, 0.0)

	if math.Abs(dp06-dp*(1.0+0.4697e-6)) > 1e-18 {
		t.Errorf("dpsi adjustment at J2000: %v vs %v", dp06, dp*(1.0+0.4697e-6))
	}
	if math.Abs(de06-de) > 1e-18 {
		t.Errorf("deps adjustment at J2000: %v vs %v", de06, de)
	}
}
