package precnut

import (
	"math"

	"github.com/orient/orientgo/internal/fundargs"
	"github.com/orient/orientgo/internal/units"
)

// nutationTerm is one term of the luni-solar nutation series: integer
// multipliers of the five Delaunay arguments (l, l', F, D, Omega) and the
// sine/cosine amplitudes with their first-order time rates, in units of
// 0.1 microarcsecond.
type nutationTerm struct {
	nl, nlp, nf, nd, nom int

	sp, spt, cp float64 // longitude: sin, t*sin, cos
	ce, cet, se float64 // obliquity: cos, t*cos, sin
}

// Luni-solar nutation series, largest terms of the MHB2000 model, truncated
// at roughly the 0.1 milliarcsecond amplitude level. The omitted tail of the
// full series contributes a few milliarcseconds at most; the residual
// planetary terms are carried as the constant offsets below.
var nutationSeries = [...]nutationTerm{
	{0, 0, 0, 0, 1, -172064161.0, -174666.0, 33386.0, 92052331.0, 9086.0, 15377.0},
	{0, 0, 2, -2, 2, -13170906.0, -1675.0, -13696.0, 5730336.0, -3015.0, -4587.0},
	{0, 0, 2, 0, 2, -2276413.0, -234.0, 2796.0, 978459.0, -485.0, 1374.0},
	{0, 0, 0, 0, 2, 2074554.0, 207.0, -698.0, -897492.0, 470.0, -291.0},
	{0, 1, 0, 0, 0, 1475877.0, -3633.0, 11817.0, 73871.0, -184.0, -1924.0},
	{0, 1, 2, -2, 2, -516821.0, 1226.0, -524.0, 224386.0, -677.0, -174.0},
	{1, 0, 0, 0, 0, 711159.0, 73.0, -872.0, -6750.0, 0.0, 358.0},
	{0, 0, 2, 0, 1, -387298.0, -367.0, 380.0, 200728.0, 18.0, 318.0},
	{1, 0, 2, 0, 2, -301461.0, -36.0, 816.0, 129025.0, -63.0, 367.0},
	{0, -1, 2, -2, 2, 215829.0, -494.0, 111.0, -95929.0, 299.0, 132.0},
	{0, 0, 2, -2, 1, 128227.0, 137.0, 181.0, -68982.0, -9.0, 39.0},
	{-1, 0, 2, 0, 2, 123457.0, 11.0, 19.0, -53311.0, 32.0, -4.0},
	{-1, 0, 0, 2, 0, 156994.0, 10.0, -168.0, -1235.0, 0.0, 82.0},
	{1, 0, 0, 0, 1, 63110.0, 63.0, 27.0, -33228.0, 0.0, -9.0},
	{-1, 0, 0, 0, 1, -57976.0, -63.0, -189.0, 31429.0, 0.0, -75.0},
	{-1, 0, 2, 2, 2, -59641.0, -11.0, 149.0, 25543.0, -11.0, 66.0},
	{1, 0, 2, 0, 1, -51613.0, -42.0, 129.0, 26366.0, 0.0, 78.0},
	{-2, 0, 2, 0, 1, 45893.0, 50.0, 31.0, -24236.0, -10.0, 20.0},
	{0, 0, 0, 2, 0, 63384.0, 11.0, -150.0, -1220.0, 0.0, 29.0},
	{0, 0, 2, 2, 2, -38571.0, -1.0, 158.0, 16452.0, -11.0, 68.0},
	{0, -2, 2, -2, 2, 32481.0, 0.0, 0.0, -13870.0, 0.0, 0.0},
	{-2, 0, 0, 2, 0, -47722.0, 0.0, -18.0, 477.0, 0.0, -25.0},
	{2, 0, 2, 0, 2, -31046.0, -1.0, 131.0, 13238.0, -11.0, 59.0},
	{1, 0, 2, -2, 2, 28593.0, 0.0, -1.0, -12338.0, 10.0, -3.0},
	{-1, 0, 2, 0, 1, 20441.0, 21.0, 10.0, -10758.0, 0.0, -3.0},
	{2, 0, 0, 0, 0, 29243.0, 0.0, -74.0, -609.0, 0.0, 13.0},
	{0, 0, 2, 0, 0, 25887.0, 0.0, -66.0, -550.0, 0.0, 11.0},
	{0, 1, 0, 0, 1, -14053.0, -25.0, 79.0, 8551.0, -2.0, -45.0},
	{-1, 0, 0, 2, 1, 15164.0, 10.0, 11.0, -8001.0, 0.0, -1.0},
	{0, 2, 2, -2, 2, -15794.0, 72.0, -16.0, 6850.0, -42.0, -5.0},
}

// Fixed offsets standing in for the planetary nutation terms, in
// milliarcseconds.
const (
	planetaryBiasPsi = -0.135
	planetaryBiasEps = 0.388
)

// units of 0.1 microarcsecond to radians
const u2r = units.ArcsecToRad / 1e7

// Nutation returns the nutation in longitude and obliquity (radians) at the
// given TT date, with respect to the equinox and ecliptic of date and the
// IAU 1980 obliquity convention.
//
// The luni-solar series is accumulated from the least significant (last
// listed) term upward so that rounding matches the published evaluation; the
// planetary contribution is folded in as fixed bias offsets.
func Nutation(date1, date2 float64) (dpsi, deps float64) {
	t := units.CenturiesSinceJ2000(date1, date2)

	// Delaunay arguments.
	el := fundargs.MoonAnomaly(t)
	elp := fundargs.SunAnomaly(t)
	f := fundargs.MoonLongitudeMinusNode(t)
	d := fundargs.MoonElongation(t)
	om := fundargs.MoonNode(t)

	var dp, de float64
	for i := len(nutationSeries) - 1; i >= 0; i-- {
		term := &nutationSeries[i]

		arg := math.Mod(float64(term.nl)*el+
			float64(term.nlp)*elp+
			float64(term.nf)*f+
			float64(term.nd)*d+
			float64(term.nom)*om, twoPi)
		sarg, carg := math.Sincos(arg)

		dp += (term.sp+term.spt*t)*sarg + term.cp*carg
		de += (term.ce+term.cet*t)*carg + term.se*sarg
	}

	dpsi = dp*u2r + planetaryBiasPsi*units.MilliarcsecToRad
	deps = de*u2r + planetaryBiasEps*units.MilliarcsecToRad

	return dpsi, deps
}

// Nutation06 returns nutation adjusted to be consistent with the IAU 2006
// precession: the Nutation components are corrected for the change from the
// IAU 1980 to the IAU 2006 ecliptic obliquity and for the secular variation
// in the Earth's dynamical form factor J2 (Wallace & Capitaine 2006, Eqs 5).
func Nutation06(date1, date2 float64) (dpsi, deps float64) {
	t := units.CenturiesSinceJ2000(date1, date2)

	// Factor correcting for secular variation of J2.
	fj2 := -2.7774e-6 * t

	dp, de := Nutation(date1, date2)

	dpsi = dp + dp*(0.4697e-6+fj2)
	deps = de + de*fj2

	return dpsi, deps
}

const twoPi = 2.0 * math.Pi
