// Package cio evaluates the CIO locator s, the small angle positioning the
// Celestial Intermediate Origin on the equator of the Celestial Intermediate
// Pole. Compatible with IAU 2006 precession and the companion nutation.
package cio

import (
	"math"

	"github.com/orient/orientgo/internal/fundargs"
	"github.com/orient/orientgo/internal/units"
)

// term is one entry of the series for s+XY/2: the integer multipliers of the
// eight fundamental arguments (l, l', F, D, Om, LVe, LE, pA) and the sine
// and cosine amplitudes in arcseconds.
type term struct {
	nfa [8]int
	s   float64
	c   float64
}

// LocatorS returns the CIO locator s in radians for the given TT two-part
// Julian Date and the CIP coordinates x, y.
//
// The series actually evaluated is for s+XY/2, which is more compact than a
// direct series for s would be; the cross term is subtracted at the end.
// The caller is responsible for supplying x, y consistent with the date.
// s remains below 0.1 arcsecond throughout 1900-2100.
func LocatorS(date1, date2, x, y float64) float64 {
	t := units.CenturiesSinceJ2000(date1, date2)

	// Fundamental arguments, IERS Conventions (2003).
	fa := [8]float64{
		fundargs.MoonAnomaly(t),
		fundargs.SunAnomaly(t),
		fundargs.MoonLongitudeMinusNode(t),
		fundargs.MoonElongation(t),
		fundargs.MoonNode(t),
		fundargs.Venus(t),
		fundargs.Earth(t),
		fundargs.GeneralPrecession(t),
	}

	// Polynomial-order bands, each seeded with its polynomial coefficient
	// and incremented by the band's trigonometric terms. Terms are summed
	// from the least significant (last listed) upward so that accumulated
	// rounding matches the published evaluation.
	w0 := sPoly[0]
	w1 := sPoly[1]
	w2 := sPoly[2]
	w3 := sPoly[3]
	w4 := sPoly[4]
	w5 := sPoly[5]

	w0 += sumBand(s0Terms[:], &fa)
	w1 += sumBand(s1Terms[:], &fa)
	w2 += sumBand(s2Terms[:], &fa)
	w3 += sumBand(s3Terms[:], &fa)
	w4 += sumBand(s4Terms[:], &fa)

	return (w0+(w1+(w2+(w3+(w4+w5*t)*t)*t)*t)*t)*units.ArcsecToRad - x*y/2.0
}

// sumBand accumulates one band's terms in reverse table order.
func sumBand(terms []term, fa *[8]float64) float64 {
	var w float64
	for i := len(terms) - 1; i >= 0; i-- {
		a := 0.0
		for j, n := range terms[i].nfa {
			a += float64(n) * fa[j]
		}
		w += terms[i].s*math.Sin(a) + terms[i].c*math.Cos(a)
	}
	return w
}

// Polynomial coefficients of the t^0..t^5 bands, arcseconds.
var sPoly = [6]float64{
	94.00e-6,
	3808.65e-6,
	-122.68e-6,
	-72574.11e-6,
	27.98e-6,
	15.62e-6,
}

// Terms of order t^0.
var s0Terms = [...]term{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, -2640.73e-6, 0.39e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -63.53e-6, 0.02e-6},
	{[8]int{0, 0, 2, -2, 3, 0, 0, 0}, -11.75e-6, -0.01e-6},
	{[8]int{0, 0, 2, -2, 1, 0, 0, 0}, -11.21e-6, -0.01e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, 4.57e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 3, 0, 0, 0}, -2.02e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 1, 0, 0, 0}, -1.98e-6, 0.00e-6},
	{[8]int{0, 0, 0, 0, 3, 0, 0, 0}, 1.72e-6, 0.00e-6},
	{[8]int{0, 1, 0, 0, 1, 0, 0, 0}, 1.41e-6, 0.01e-6},
	{[8]int{0, 1, 0, 0, -1, 0, 0, 0}, 1.26e-6, 0.01e-6},
	{[8]int{1, 0, 0, 0, -1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, 1, 0, 0, 0}, 0.63e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 3, 0, 0, 0}, -0.46e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 1, 0, 0, 0}, -0.45e-6, 0.00e-6},
	{[8]int{0, 0, 4, -4, 4, 0, 0, 0}, -0.36e-6, 0.00e-6},
	{[8]int{0, 0, 1, -1, 1, -8, 12, 0}, 0.24e-6, 0.12e-6},
	{[8]int{0, 0, 2, 0, 0, 0, 0, 0}, -0.32e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, -0.28e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 3, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 1, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 0, 0, 0, 0}, 0.21e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -3, 0, 0, 0}, -0.19e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -1, 0, 0, 0}, -0.18e-6, 0.00e-6},
	{[8]int{0, 0, 0, 0, 0, 8, -13, -1}, 0.10e-6, -0.05e-6},
	{[8]int{0, 0, 0, 2, 0, 0, 0, 0}, -0.15e-6, 0.00e-6},
	{[8]int{2, 0, -2, 0, -1, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 2, 0, 0, 0}, 0.14e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, 1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, -1, 0, 0, 0}, -0.14e-6, 0.00e-6},
	{[8]int{0, 0, 4, -2, 4, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 4, 0, 0, 0}, 0.11e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -3, 0, 0, 0}, -0.11e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -1, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

// Terms of order t^1.
var s1Terms = [...]term{
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -0.07e-6, 3.57e-6},
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 1.73e-6, -0.03e-6},
	{[8]int{0, 0, 2, -2, 3, 0, 0, 0}, 0.00e-6, 0.48e-6},
}

// Terms of order t^2.
var s2Terms = [...]term{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 743.52e-6, -0.17e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, 56.91e-6, 0.06e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, 9.84e-6, -0.01e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, -8.85e-6, 0.01e-6},
	{[8]int{0, 1, 0, 0, 0, 0, 0, 0}, -6.38e-6, -0.05e-6},
	{[8]int{1, 0, 0, 0, 0, 0, 0, 0}, -3.07e-6, 0.00e-6},
	{[8]int{0, 1, 2, -2, 2, 0, 0, 0}, 2.23e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 1, 0, 0, 0}, 1.67e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 2, 0, 0, 0}, 1.30e-6, 0.00e-6},
	{[8]int{0, 1, -2, 2, -2, 0, 0, 0}, 0.93e-6, 0.00e-6},
	{[8]int{1, 0, 0, -2, 0, 0, 0, 0}, 0.68e-6, 0.00e-6},
	{[8]int{0, 0, 2, -2, 1, 0, 0, 0}, -0.55e-6, 0.00e-6},
	{[8]int{1, 0, -2, 0, -2, 0, 0, 0}, 0.53e-6, 0.00e-6},
	{[8]int{0, 0, 0, 2, 0, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, 1, 0, 0, 0}, -0.27e-6, 0.00e-6},
	{[8]int{1, 0, -2, -2, -2, 0, 0, 0}, -0.26e-6, 0.00e-6},
	{[8]int{1, 0, 0, 0, -1, 0, 0, 0}, -0.25e-6, 0.00e-6},
	{[8]int{1, 0, 2, 0, 1, 0, 0, 0}, 0.22e-6, 0.00e-6},
	{[8]int{2, 0, 0, -2, 0, 0, 0, 0}, -0.21e-6, 0.00e-6},
	{[8]int{2, 0, -2, 0, -1, 0, 0, 0}, 0.20e-6, 0.00e-6},
	{[8]int{0, 0, 2, 2, 2, 0, 0, 0}, 0.17e-6, 0.00e-6},
	{[8]int{2, 0, 2, 0, 2, 0, 0, 0}, 0.13e-6, 0.00e-6},
	{[8]int{2, 0, 0, 0, 0, 0, 0, 0}, -0.13e-6, 0.00e-6},
	{[8]int{1, 0, 2, -2, 2, 0, 0, 0}, -0.12e-6, 0.00e-6},
	{[8]int{0, 0, 2, 0, 0, 0, 0, 0}, -0.11e-6, 0.00e-6},
}

// Terms of order t^3.
var s3Terms = [...]term{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, 0.30e-6, -23.42e-6},
	{[8]int{0, 0, 2, -2, 2, 0, 0, 0}, -0.03e-6, -1.46e-6},
	{[8]int{0, 0, 2, 0, 2, 0, 0, 0}, -0.01e-6, -0.25e-6},
	{[8]int{0, 0, 0, 0, 2, 0, 0, 0}, 0.00e-6, 0.23e-6},
}

// Terms of order t^4.
var s4Terms = [...]term{
	{[8]int{0, 0, 0, 0, 1, 0, 0, 0}, -0.26e-6, -0.01e-6},
}
