// Package geom provides the fixed-size vector and matrix primitives used by
// the Earth-orientation pipeline.
//
// Everything here is 3-vectors and 3x3 row-major rotation matrices; this is
// deliberately not a general linear-algebra library. Rotation matrices are
// built by applying elementary axis rotations to a working copy (see RotateX,
// RotateZ), which left-multiply the matrix so that successively applied
// rotations compose in call order.
package geom

import "math"

// Vec3 is a position or direction vector. For direction-only consumers the
// magnitude is ignored.
type Vec3 [3]float64

// Mat3 is a row-major 3x3 rotation matrix. A frame-transform matrix maps
// vectors from frame A to frame B in one specific direction only.
type Mat3 [3][3]float64

// TwoPi is the full circle in radians.
const TwoPi = 2.0 * math.Pi

// Dot returns the scalar product a . b.
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the vector product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm returns the modulus of p.
func Norm(p Vec3) float64 {
	return math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
}

// Scale returns s * p.
func Scale(s float64, p Vec3) Vec3 {
	return Vec3{s * p[0], s * p[1], s * p[2]}
}

// Unit decomposes p into its modulus and unit vector. A zero vector yields
// a zero modulus and a zero unit vector.
func Unit(p Vec3) (float64, Vec3) {
	w := Norm(p)
	if w == 0.0 {
		return 0.0, Vec3{}
	}
	return w, Scale(1.0/w, p)
}

// MulVec returns m * p.
func (m *Mat3) MulVec(p Vec3) Vec3 {
	var out Vec3
	for i := range m {
		w := 0.0
		for j := range m[i] {
			w += m[i][j] * p[j]
		}
		out[i] = w
	}
	return out
}

// MulMat returns m * b.
func (m *Mat3) MulMat(b *Mat3) Mat3 {
	var out Mat3
	for i := range m {
		for j := 0; j < 3; j++ {
			w := 0.0
			for k := 0; k < 3; k++ {
				w += m[i][k] * b[k][j]
			}
			out[i][j] = w
		}
	}
	return out
}

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotateX incorporates into m an additional rotation by phi radians about the
// x-axis, anticlockwise as seen looking towards the origin from positive x:
//
//	( 1    0        0    )
//	( 0  +cos phi +sin phi )
//	( 0  -sin phi +cos phi )
func (m *Mat3) RotateX(phi float64) {
	s, c := math.Sincos(phi)

	a10 := c*m[1][0] + s*m[2][0]
	a11 := c*m[1][1] + s*m[2][1]
	a12 := c*m[1][2] + s*m[2][2]
	a20 := -s*m[1][0] + c*m[2][0]
	a21 := -s*m[1][1] + c*m[2][1]
	a22 := -s*m[1][2] + c*m[2][2]

	m[1][0], m[1][1], m[1][2] = a10, a11, a12
	m[2][0], m[2][1], m[2][2] = a20, a21, a22
}

// RotateZ incorporates into m an additional rotation by psi radians about the
// z-axis, anticlockwise as seen looking towards the origin from positive z.
func (m *Mat3) RotateZ(psi float64) {
	s, c := math.Sincos(psi)

	a00 := c*m[0][0] + s*m[1][0]
	a01 := c*m[0][1] + s*m[1][1]
	a02 := c*m[0][2] + s*m[1][2]
	a10 := -s*m[0][0] + c*m[1][0]
	a11 := -s*m[0][1] + c*m[1][1]
	a12 := -s*m[0][2] + c*m[1][2]

	m[0][0], m[0][1], m[0][2] = a00, a01, a02
	m[1][0], m[1][1], m[1][2] = a10, a11, a12
}

// NormalizeAngle reduces a to the range 0 <= a < 2pi using floored-modulo
// semantics (truncated remainder with a sign correction).
func NormalizeAngle(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if w < 0.0 {
		w += TwoPi
	}
	return w
}
