// Package sidereal computes the Earth rotation angle and Greenwich mean and
// apparent sidereal time, consistent with the IAU 2000/2006 resolutions.
//
// Two timescales are involved: UT1 drives Earth rotation and TT drives
// precession-nutation. Supplying the same date for both is permitted but
// introduces errors of order 100 microarcseconds; that is an accuracy
// caveat, not a failure.
package sidereal

import (
	"math"

	"github.com/orient/orientgo/internal/cio"
	"github.com/orient/orientgo/internal/geom"
	"github.com/orient/orientgo/internal/precnut"
	"github.com/orient/orientgo/internal/units"
)

// JulianEpoch converts a two-part Julian Date to a Julian Epoch (e.g.
// 2000.0). Maximum resolution is achieved when dj1 is 2451545.0.
func JulianEpoch(dj1, dj2 float64) float64 {
	return 2000.0 + ((dj1-units.J2000)+dj2)/units.DaysPerYear
}

// JulianEpochToDate converts a Julian Epoch to a two-part Julian Date in the
// usual MJD split: the first part is always 2400000.5.
func JulianEpochToDate(epj float64) (djm0, djm float64) {
	return units.MJDZero, units.MJDJ2000 + (epj-2000.0)*units.DaysPerYear
}

// EarthRotationAngle returns the Earth rotation angle (IAU 2000 model) in
// radians, range [0, 2pi), for UT1 given as a two-part Julian Date.
//
// The date may be split in any convenient way; maximum precision is
// delivered when one part is 0hrs UT1 on the day in question and the other
// lies in 0 to 1. To retain precision the integer contributions are
// eliminated: the days-since-epoch term uses the smaller-magnitude part
// first and the day fraction is the sum of both parts' fractional parts.
func EarthRotationAngle(dj1, dj2 float64) float64 {
	d1, d2 := dj1, dj2
	if d1 >= d2 {
		d1, d2 = d2, d1
	}
	t := d1 + (d2 - units.J2000)

	// Fractional part of T (days).
	f := math.Mod(d1, 1.0) + math.Mod(d2, 1.0)

	return geom.NormalizeAngle(geom.TwoPi * (f + 0.7790572732640 + 0.00273781191135448*t))
}

// MeanSiderealTime returns Greenwich mean sidereal time in radians, range
// [0, 2pi), consistent with IAU 2006 precession. UT1 and TT are each
// two-part Julian Dates.
func MeanSiderealTime(uta, utb, tta, ttb float64) float64 {
	t := units.CenturiesSinceJ2000(tta, ttb)

	return geom.NormalizeAngle(EarthRotationAngle(uta, utb) +
		(0.014506+
			(4612.156534+
				(1.3915817+
					(-0.00000044+
						(-0.000029956+
							(-0.0000000368)*t)*t)*t)*t)*t)*units.ArcsecToRad)
}

// ApparentSiderealTimeMatrix returns Greenwich apparent sidereal time in
// radians, range [0, 2pi), given an explicit nutation x precession x bias
// matrix. Although the CIO locator series used internally is the IAU 2006
// one, the function can in practice be used with any equinox-based NPB
// matrix.
func ApparentSiderealTimeMatrix(uta, utb, tta, ttb float64, rnpb *geom.Mat3) float64 {
	x, y := precnut.CIPCoordinates(rnpb)
	s := cio.LocatorS(tta, ttb, x, y)
	era := EarthRotationAngle(uta, utb)
	eo := precnut.EquationOfOrigins(rnpb, s)
	return geom.NormalizeAngle(era - eo)
}

// ApparentSiderealTime returns Greenwich apparent sidereal time in radians,
// range [0, 2pi), deriving the nutation x precession x bias matrix
// internally from the TT date.
func ApparentSiderealTime(uta, utb, tta, ttb float64) float64 {
	rnpb := precnut.NPBMatrix(tta, ttb)
	return ApparentSiderealTimeMatrix(uta, utb, tta, ttb, &rnpb)
}
