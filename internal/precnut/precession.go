// Package precnut implements the IAU 2006 precession model and the
// companion nutation series, and composes frame bias, precession and
// nutation into rotation matrices.
//
// All dates are TT two-part Julian Dates; only the sum of the two parts is
// significant. Polynomials are evaluated with Horner's scheme from the
// highest-degree coefficient inward; the coefficient tables are domain
// constants from Hilton et al. (2006) and must not be altered.
package precnut

import (
	"math"

	"github.com/orient/orientgo/internal/geom"
	"github.com/orient/orientgo/internal/units"
)

// MeanObliquity returns the mean obliquity of the ecliptic at the given TT
// date, IAU 2006 precession model, in radians. The result is the angle
// between the ecliptic and mean equator of date.
func MeanObliquity(date1, date2 float64) float64 {
	t := units.CenturiesSinceJ2000(date1, date2)

	return (84381.406 +
		(-46.836769+
			(-0.0001831+
				(0.00200340+
					(-0.000000576+
						(-0.0000000434)*t)*t)*t)*t)*t) * units.ArcsecToRad
}

// Angles holds the sixteen equinox-based angles of the Capitaine et al.
// "P03" precession theory as set out in Table 1 of Hilton et al. (2006).
// All values are radians.
type Angles struct {
	Eps0   float64 // obliquity at J2000.0
	PsiA   float64 // luni-solar precession
	OmA    float64 // inclination of equator wrt J2000.0 ecliptic
	PA     float64 // ecliptic pole x, J2000.0 ecliptic triad
	QA     float64 // ecliptic pole -y, J2000.0 ecliptic triad
	PiA    float64 // angle between moving and J2000.0 ecliptics
	BigPiA float64 // longitude of ascending node of the ecliptic
	EpsA   float64 // obliquity of the ecliptic
	ChiA   float64 // planetary precession
	ZA     float64 // equatorial precession: -3rd 323 Euler angle
	ZetaA  float64 // equatorial precession: -1st 323 Euler angle
	ThetaA float64 // equatorial precession: 2nd 323 Euler angle
	PrecA  float64 // general precession
	Gamma  float64 // F-W angle gamma_J2000
	Phi    float64 // F-W angle phi_J2000
	Psi    float64 // F-W angle psi_J2000
}

// PrecessionAngles returns the full set of equinox-based P03 precession
// quantities for the given TT date. The parameterization choice is left to
// the caller; the pipeline itself uses the Fukushima-Williams variant that
// refers directly to the GCRS pole (see FWAngles).
func PrecessionAngles(date1, date2 float64) Angles {
	t := units.CenturiesSinceJ2000(date1, date2)

	var a Angles

	// Obliquity at J2000.0.
	a.Eps0 = 84381.406 * units.ArcsecToRad

	// Luni-solar precession.
	a.PsiA = (5038.481507 +
		(-1.0790069+
			(-0.00114045+
				(0.000132851+
					(-0.0000000951)*t)*t)*t)*t) * t * units.ArcsecToRad

	// Inclination of mean equator with respect to the J2000.0 ecliptic.
	a.OmA = a.Eps0 + (-0.025754+
		(0.0512623+
			(-0.00772503+
				(-0.000000467+
					(0.0000003337)*t)*t)*t)*t)*t*units.ArcsecToRad

	// Ecliptic pole x, J2000.0 ecliptic triad.
	a.PA = (4.199094 +
		(0.1939873+
			(-0.00022466+
				(-0.000000912+
					(0.0000000120)*t)*t)*t)*t) * t * units.ArcsecToRad

	// Ecliptic pole -y, J2000.0 ecliptic triad.
	a.QA = (-46.811015 +
		(0.0510283+
			(0.00052413+
				(-0.000000646+
					(-0.0000000172)*t)*t)*t)*t) * t * units.ArcsecToRad

	// Angle between moving and J2000.0 ecliptics.
	a.PiA = (46.998973 +
		(-0.0334926+
			(-0.00012559+
				(0.000000113+
					(-0.0000000022)*t)*t)*t)*t) * t * units.ArcsecToRad

	// Longitude of ascending node of the moving ecliptic.
	a.BigPiA = (629546.7936 +
		(-867.95758+
			(0.157992+
				(-0.0005371+
					(-0.00004797+
						(0.000000072)*t)*t)*t)*t)*t) * units.ArcsecToRad

	// Mean obliquity of the ecliptic.
	a.EpsA = MeanObliquity(date1, date2)

	// Planetary precession.
	a.ChiA = (10.556403 +
		(-2.3814292+
			(-0.00121197+
				(0.000170663+
					(-0.0000000560)*t)*t)*t)*t) * t * units.ArcsecToRad

	// Equatorial precession: minus the third of the 323 Euler angles.
	a.ZA = (-2.650545 +
		(2306.077181+
			(1.0927348+
				(0.01826837+
					(-0.000028596+
						(-0.0000002904)*t)*t)*t)*t)*t) * units.ArcsecToRad

	// Equatorial precession: minus the first of the 323 Euler angles.
	a.ZetaA = (2.650545 +
		(2306.083227+
			(0.2988499+
				(0.01801828+
					(-0.000005971+
						(-0.0000003173)*t)*t)*t)*t)*t) * units.ArcsecToRad

	// Equatorial precession: second of the 323 Euler angles.
	a.ThetaA = (2004.191903 +
		(-0.4294934+
			(-0.04182264+
				(-0.000007089+
					(-0.0000001274)*t)*t)*t)*t) * t * units.ArcsecToRad

	// General precession.
	a.PrecA = (5028.796195 +
		(1.1054348+
			(0.00007964+
				(-0.000023857+
					(-0.0000000383)*t)*t)*t)*t) * t * units.ArcsecToRad

	// Fukushima-Williams angles for precession.
	a.Gamma = (10.556403 +
		(0.4932044+
			(-0.00031238+
				(-0.000002788+
					(0.0000000260)*t)*t)*t)*t) * t * units.ArcsecToRad

	a.Phi = a.Eps0 + (-46.811015+
		(0.0511269+
			(0.00053289+
				(-0.000000440+
					(-0.0000000176)*t)*t)*t)*t)*t*units.ArcsecToRad

	a.Psi = (5038.481507 +
		(1.5584176+
			(-0.00018522+
				(-0.000026452+
					(-0.0000000148)*t)*t)*t)*t) * t * units.ArcsecToRad

	return a
}

// FWAngles returns the IAU 2006 bias-plus-precession angles in the 4-angle
// Fukushima-Williams parameterization: gamma_bar, phi_bar, psi_bar and the
// mean obliquity epsilon_A, all radians. The matrix representing the
// combined effects of frame bias and precession is
// R1(-epsA) R3(-psib) R1(phib) R3(gamb); see FWMatrix.
func FWAngles(date1, date2 float64) (gamb, phib, psib, epsa float64) {
	t := units.CenturiesSinceJ2000(date1, date2)

	gamb = (-0.052928 +
		(10.556378+
			(0.4932044+
				(-0.00031238+
					(-0.000002788+
						(0.0000000260)*t)*t)*t)*t)*t) * units.ArcsecToRad

	phib = (84381.412819 +
		(-46.811016+
			(0.0511268+
				(0.00053289+
					(-0.000000440+
						(-0.0000000176)*t)*t)*t)*t)*t) * units.ArcsecToRad

	psib = (-0.041775 +
		(5038.481484+
			(1.5584175+
				(-0.00018522+
					(-0.000026452+
						(-0.0000000148)*t)*t)*t)*t)*t) * units.ArcsecToRad

	epsa = MeanObliquity(date1, date2)

	return gamb, phib, psib, epsa
}

// FWMatrix forms a rotation matrix from four Fukushima-Williams angles by
// applying, to an identity matrix, Rz(gamb), Rx(phib), Rz(-psi), Rx(-eps) in
// that order.
//
// One routine serves three products, depending entirely on the angles the
// caller supplies: the frame-bias matrix (angles for J2000.0), the
// bias-precession matrix (the four FWAngles values), or the
// bias-precession-nutation matrix (psi and eps with the nutation components
// added in). The resulting matrix transforms GCRS vectors to the equator
// and origin implied by the supplied angles.
func FWMatrix(gamb, phib, psi, eps float64) geom.Mat3 {
	r := geom.Identity()
	r.RotateZ(gamb)
	r.RotateX(phib)
	r.RotateZ(-psi)
	r.RotateX(-eps)
	return r
}

// PrecessionMatrix returns the bias-precession matrix from GCRS to the mean
// equator and equinox of the given TT date, IAU 2006 model. The matrix
// operates in the sense v(date) = r * v(GCRS).
func PrecessionMatrix(date1, date2 float64) geom.Mat3 {
	gamb, phib, psib, epsa := FWAngles(date1, date2)
	return FWMatrix(gamb, phib, psib, epsa)
}

// NPBMatrix returns the equinox-based nutation x precession x frame-bias
// matrix for the given TT date, IAU 2006 precession with the companion
// nutation. The matrix operates in the sense v(true, date) = r * v(GCRS).
func NPBMatrix(date1, date2 float64) geom.Mat3 {
	gamb, phib, psib, epsa := FWAngles(date1, date2)
	dp, de := Nutation06(date1, date2)
	return FWMatrix(gamb, phib, psib+dp, epsa+de)
}

// CIPCoordinates extracts the X,Y coordinates of the Celestial Intermediate
// Pole from a celestial-to-true matrix. The matrix transforms vectors from
// GCRS to the true equator of date, so the CIP unit vector is its bottom
// row.
func CIPCoordinates(rnpb *geom.Mat3) (x, y float64) {
	return rnpb[2][0], rnpb[2][1]
}

// EquationOfOrigins returns the equation of the origins in radians, given
// the classical nutation x precession x bias matrix and the CIO locator s.
//
// The equation of the origins is the distance between the true equinox and
// the celestial intermediate origin, and equivalently ERA-GST. The algorithm
// evaluates expression (16) of Wallace & Capitaine (2006); when both
// intermediate terms vanish the result degenerates to s itself.
func EquationOfOrigins(rnpb *geom.Mat3, s float64) float64 {
	x := rnpb[2][0]
	ax := x / (1.0 + rnpb[2][2])
	xs := 1.0 - ax*x
	ys := -ax * rnpb[2][1]
	zs := -x
	p := rnpb[0][0]*xs + rnpb[0][1]*ys + rnpb[0][2]*zs
	q := rnpb[1][0]*xs + rnpb[1][1]*ys + rnpb[1][2]*zs
	if p != 0.0 || q != 0.0 {
		return s - math.Atan2(q, p)
	}
	return s
}
