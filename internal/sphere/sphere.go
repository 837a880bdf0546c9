// Package sphere provides spherical-coordinate transforms: Cartesian to and
// from spherical, horizon to and from equatorial, the parallactic angle,
// and angular separations.
//
// All angles are radians. Degenerate directions follow explicit branch
// policies rather than returning errors: at either pole the longitude,
// hour angle and parallactic angle are zero by convention.
package sphere

import (
	"math"

	"github.com/orient/orientgo/internal/geom"
)

// ToSpherical converts a position vector to longitude and latitude angles.
// Only the direction of p is used; at either pole zero longitude is
// returned.
func ToSpherical(p geom.Vec3) (theta, phi float64) {
	x, y, z := p[0], p[1], p[2]
	d2 := x*x + y*y

	if d2 != 0.0 {
		theta = math.Atan2(y, x)
	}
	if z != 0.0 {
		phi = math.Atan2(z, math.Sqrt(d2))
	}
	return theta, phi
}

// FromSpherical converts longitude and latitude angles to direction
// cosines.
func FromSpherical(theta, phi float64) geom.Vec3 {
	sp, cp := math.Sincos(phi)
	st, ct := math.Sincos(theta)
	return geom.Vec3{ct * cp, st * cp, sp}
}

// HorizonToEquatorial transforms azimuth and altitude to local hour angle
// and declination for a site at latitude phi. Azimuth is north zero, east
// +pi/2. The hour angle is returned in +/-pi and declination in +/-pi/2.
func HorizonToEquatorial(az, el, phi float64) (ha, dec float64) {
	sa, ca := math.Sincos(az)
	se, ce := math.Sincos(el)
	sp, cp := math.Sincos(phi)

	// HA,Dec unit vector.
	x := -ca*ce*sp + se*cp
	y := -sa * ce
	z := ca*ce*cp + se*sp

	r := math.Sqrt(x*x + y*y)
	if r != 0.0 {
		ha = math.Atan2(y, x)
	}
	dec = math.Atan2(z, r)
	return ha, dec
}

// EquatorialToHorizon transforms local hour angle and declination to
// azimuth and altitude for a site at latitude phi. Azimuth is returned in
// [0, 2pi), north zero, east +pi/2; altitude in +/-pi/2.
func EquatorialToHorizon(ha, dec, phi float64) (az, el float64) {
	sh, ch := math.Sincos(ha)
	sd, cd := math.Sincos(dec)
	sp, cp := math.Sincos(phi)

	// Az,Alt unit vector.
	x := -ch*cd*sp + sd*cp
	y := -sh * cd
	z := ch*cd*cp + sd*sp

	r := math.Sqrt(x*x + y*y)
	var a float64
	if r != 0.0 {
		a = math.Atan2(y, x)
	}
	if a < 0.0 {
		a += geom.TwoPi
	}
	el = math.Atan2(z, r)
	return a, el
}

// ParallacticAngle returns the parallactic angle, the position angle of the
// vertical, for the given hour angle and declination at a site of latitude
// phi. The result lies in -pi to +pi; at the pole itself zero is returned.
func ParallacticAngle(ha, dec, phi float64) float64 {
	sp, cp := math.Sincos(phi)
	sha, cha := math.Sincos(ha)
	sdec, cdec := math.Sincos(dec)
	sqsz := cp * sha
	cqsz := sp*cdec - cp*sdec*cha
	if sqsz != 0.0 || cqsz != 0.0 {
		return math.Atan2(sqsz, cqsz)
	}
	return 0.0
}

// Separation returns the angular separation between two directions given as
// spherical coordinates.
func Separation(aLong, aLat, bLong, bLat float64) float64 {
	return SeparationVec(FromSpherical(aLong, aLat), FromSpherical(bLong, bLat))
}

// SeparationVec returns the angular separation between two position vectors
// (not necessarily unit length), always positive.
//
// A plain scalar product gives poor accuracy near zero and pi; combining
// the cross and dot products delivers full accuracy for any angle.
func SeparationVec(a, b geom.Vec3) float64 {
	ss := geom.Norm(geom.Cross(a, b))
	cs := geom.Dot(a, b)
	if ss != 0.0 || cs != 0.0 {
		return math.Atan2(ss, cs)
	}
	return 0.0
}
