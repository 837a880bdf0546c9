package geodetic

import (
	"errors"
	"fmt"
	"math"

	"github.com/orient/orientgo/internal/geom"
)

// ErrInvalidValue reports an argument outside its mathematically required
// domain, such as a non-positive equatorial radius or a flattening outside
// [0, 1).
var ErrInvalidValue = errors.New("invalid value")

// ErrUnrealistic reports arguments that are individually well formed but
// jointly describe a non-physical ellipsoid/position combination.
var ErrUnrealistic = errors.New("unrealistic inputs")

// FromGeocentric transforms a geocentric Cartesian position to geodetic
// coordinates on the reference ellipsoid of equatorial radius a and
// flattening f. It returns east-positive longitude and geodetic latitude in
// radians and height above the ellipsoid in the units of a and xyz (which
// must agree; meters is the conventional choice).
//
// The algorithm is the closed-form, Halley-accelerated method of Fukushima
// (2006): a single-pass algebraic correction, no iteration. Positions
// within a * 1e-16 of the polar axis take a closed-form polar solution with
// zero longitude by convention. The latitude sign is restored from the sign
// of z at the end, independent of which branch computed it.
func FromGeocentric(a, f float64, xyz geom.Vec3) (elong, phi, height float64, err error) {
	if f < 0.0 || f >= 1.0 {
		return 0, 0, 0, fmt.Errorf("%w: flattening f=%g outside [0,1)", ErrInvalidValue, f)
	}
	if a <= 0.0 {
		return 0, 0, 0, fmt.Errorf("%w: equatorial radius a=%g must be positive", ErrInvalidValue, a)
	}

	// Functions of ellipsoid parameters.
	aeps2 := a * a * 1e-32
	e2 := (2.0 - f) * f
	e4t := e2 * e2 * 1.5
	ec2 := 1.0 - e2
	ec := math.Sqrt(ec2)
	b := a * ec

	x := xyz[0]
	y := xyz[1]
	z := xyz[2]

	// Distance from polar axis squared.
	p2 := x*x + y*y

	// Longitude.
	if p2 > 0.0 {
		elong = math.Atan2(y, x)
	}

	absz := math.Abs(z)

	if p2 > aeps2 {
		// Distance from polar axis.
		p := math.Sqrt(p2)

		// Normalization.
		s0 := absz / a
		pn := p / a
		zc := ec * s0

		// Prepare Newton correction factors.
		c0 := ec * pn
		c02 := c0 * c0
		c03 := c02 * c0
		s02 := s0 * s0
		s03 := s02 * s0
		a02 := c02 + s02
		a0 := math.Sqrt(a02)
		a03 := a02 * a0
		d0 := zc*a03 + e2*s03
		f0 := pn*a03 - e2*c03

		// Prepare Halley correction factor.
		b0 := e4t * s02 * c02 * pn * (a0 - ec)
		s1 := d0*f0 - b0*s0
		cc := ec * (f0*f0 - b0*c0)

		// Evaluate latitude and height.
		phi = math.Atan(s1 / cc)
		s12 := s1 * s1
		cc2 := cc * cc
		height = (p*cc + absz*s1 - a*math.Sqrt(ec2*s12+cc2)) / math.Sqrt(s12+cc2)
	} else {
		// Exception: pole.
		phi = math.Pi / 2.0
		height = absz - b
	}

	// Restore sign of latitude.
	if z < 0.0 {
		phi = -phi
	}

	return elong, phi, height, nil
}

// ToGeocentric transforms geodetic coordinates to a geocentric Cartesian
// position for the reference ellipsoid of equatorial radius a and
// flattening f. Longitude is east positive, latitude geodetic, both in
// radians; height and a must share units, which become the units of the
// result.
//
// No validation is performed on the individual arguments; an ErrUnrealistic
// error indicates a combination that would lead to arithmetic exceptions.
func ToGeocentric(a, f, elong, phi, height float64) (geom.Vec3, error) {
	// Functions of geodetic latitude.
	sp, cp := math.Sincos(phi)
	w := 1.0 - f
	w = w * w
	d := cp*cp + w*sp*sp
	if d <= 0.0 {
		return geom.Vec3{}, fmt.Errorf("%w: cos^2(phi) + (1-f)^2 sin^2(phi) is non-positive", ErrUnrealistic)
	}
	ac := a / math.Sqrt(d)
	as := w * ac

	// Geocentric vector.
	r := (ac + height) * cp
	sl, cl := math.Sincos(elong)
	return geom.Vec3{r * cl, r * sl, (as + height) * sp}, nil
}

// FromGeocentricOn is FromGeocentric bound to a named reference ellipsoid.
func FromGeocentricOn(e Ellipsoid, xyz geom.Vec3) (elong, phi, height float64, err error) {
	a, f := e.Params()
	return FromGeocentric(a, f, xyz)
}

// ToGeocentricOn is ToGeocentric bound to a named reference ellipsoid.
func ToGeocentricOn(e Ellipsoid, elong, phi, height float64) (geom.Vec3, error) {
	a, f := e.Params()
	return ToGeocentric(a, f, elong, phi, height)
}
