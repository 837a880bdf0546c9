// Package units holds the time and angle constants shared across the
// Earth-orientation packages. These are immutable domain constants, not
// configuration.
package units

const (
	// J2000 is the reference epoch J2000.0 as a Julian Date (TT).
	J2000 = 2451545.0

	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0

	// DaysPerYear is the length of a Julian year in days.
	DaysPerYear = 365.25

	// MJDZero is the Julian Date of Modified Julian Date zero.
	MJDZero = 2400000.5

	// MJDJ2000 is the reference epoch J2000.0 as a Modified Julian Date.
	MJDJ2000 = 51544.5

	// ArcsecPerTurn is the number of arcseconds in a full circle.
	ArcsecPerTurn = 1296000.0

	// ArcsecToRad converts arcseconds to radians.
	ArcsecToRad = 4.848136811095359935899141e-6

	// MilliarcsecToRad converts milliarcseconds to radians.
	MilliarcsecToRad = ArcsecToRad / 1e3
)

// CenturiesSinceJ2000 converts a two-part Julian Date into Julian centuries
// since J2000.0. The date may be apportioned in any convenient way between
// the two parts; placing the integer day in part1 close to J2000 delivers the
// best resolution, but only the sum is significant.
func CenturiesSinceJ2000(date1, date2 float64) float64 {
	return ((date1 - J2000) + date2) / DaysPerCentury
}
