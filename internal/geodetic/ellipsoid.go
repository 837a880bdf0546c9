// Package geodetic converts between Cartesian geocentric coordinates and
// geodetic longitude, latitude and height on a reference ellipsoid.
//
// The ellipsoid-agnostic entry points FromGeocentric and ToGeocentric take
// raw (a, f) parameters; the Ellipsoid type is optional sugar binding the
// same conversions to a small closed set of named reference systems.
package geodetic

// Ellipsoid identifies one of the named reference ellipsoids. The zero
// value is WGS84; if in doubt, use WGS84.
type Ellipsoid int

const (
	// WGS84 is the World Geodetic System 1984 ensemble.
	WGS84 Ellipsoid = iota
	// GRS80 is the Geodetic Reference System 1980.
	GRS80
	// WGS72 is the World Geodetic System 1972 ensemble.
	WGS72
)

// String returns the conventional name of the ellipsoid.
func (e Ellipsoid) String() string {
	switch e {
	case WGS84:
		return "WGS84"
	case GRS80:
		return "GRS80"
	case WGS72:
		return "WGS72"
	default:
		return "unknown"
	}
}

// Params returns the equatorial radius a in meters and the flattening f of
// the ellipsoid. f is dimensionless, for the Earth around 0.00335
// (roughly 1/298). Unknown identifiers yield WGS84.
func (e Ellipsoid) Params() (a, f float64) {
	switch e {
	case GRS80:
		return 6378137.0, 1.0 / 298.257222101
	case WGS72:
		return 6378135.0, 1.0 / 298.26
	default:
		return 6378137.0, 1.0 / 298.257223563
	}
}

// ParseEllipsoid maps a conventional name to an Ellipsoid identifier.
func ParseEllipsoid(name string) (Ellipsoid, bool) {
	switch name {
	case "WGS84", "wgs84":
		return WGS84, true
	case "GRS80", "grs80":
		return GRS80, true
	case "WGS72", "wgs72":
		return WGS72, true
	}
	return WGS84, false
}
