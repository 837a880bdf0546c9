package sphere

import (
	"math"
	"testing"

	"github.com/orient/orientgo/internal/geom"
)

func TestToSpherical(t *testing.T) {
	theta, phi := ToSpherical(geom.Vec3{100.0, -50.0, 25.0})
	if math.Abs(theta-(-0.4636476090008061162)) > 1e-14 {
		t.Errorf("theta = %.19f, want -0.4636476090008061162", theta)
	}
	if math.Abs(phi-0.2199879773954594463) > 1e-14 {
		t.Errorf("phi = %.19f, want 0.2199879773954594463", phi)
	}

	// At either pole longitude is zero by convention.
	theta, phi = ToSpherical(geom.Vec3{0.0, 0.0, -2.0})
	if theta != 0.0 || math.Abs(phi+math.Pi/2) > 1e-14 {
		t.Errorf("pole: theta = %v, phi = %v", theta, phi)
	}

	// The zero vector maps to the origin of coordinates.
	theta, phi = ToSpherical(geom.Vec3{})
	if theta != 0.0 || phi != 0.0 {
		t.Errorf("zero vector: theta = %v, phi = %v", theta, phi)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	cases := [][2]float64{
		{0.0, 0.0},
		{2.345, 0.123},
		{-1.0, -1.2},
		{3.0, 1.5},
	}
	for _, c := range cases {
		p := FromSpherical(c[0], c[1])
		if math.Abs(geom.Norm(p)-1.0) > 1e-14 {
			t.Errorf("FromSpherical(%v, %v) norm = %v", c[0], c[1], geom.Norm(p))
		}
		theta, phi := ToSpherical(p)
		if math.Abs(theta-c[0]) > 1e-13 || math.Abs(phi-c[1]) > 1e-13 {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", c[0], c[1], theta, phi)
		}
	}
}

func TestHorizonEquatorialRoundTrip(t *testing.T) {
	const phi = 0.89 // site latitude

	cases := [][2]float64{
		{0.123, 0.456},
		{2.0, 0.1},
		{5.5, 1.2},
		{3.14, -0.2},
	}
	for _, c := range cases {
		az, el := c[0], c[1]
		ha, dec := HorizonToEquatorial(az, el, phi)
		gotAz, gotEl := EquatorialToHorizon(ha, dec, phi)

		dAz := math.Abs(gotAz - az)
		if dAz > math.Pi {
			dAz = 2*math.Pi - dAz
		}
		if dAz > 1e-12 || math.Abs(gotEl-el) > 1e-12 {
			t.Errorf("az/el (%v, %v) round-trips to (%v, %v)", az, el, gotAz, gotEl)
		}
		if gotAz < 0 || gotAz >= 2*math.Pi {
			t.Errorf("azimuth %v outside [0, 2pi)", gotAz)
		}
	}
}

func TestEquatorialToHorizonZenith(t *testing.T) {
	// An object at the site latitude on the meridian culminates at zenith.
	const phi = 0.7
	_, el := EquatorialToHorizon(0.0, phi, phi)
	if math.Abs(el-math.Pi/2) > 1e-12 {
		t.Errorf("el = %v, want pi/2", el)
	}
}

func TestParallacticAngle(t *testing.T) {
	// On the meridian south of zenith the parallactic angle vanishes.
	if q := ParallacticAngle(0.0, 0.1, 0.5); math.Abs(q) > 1e-14 {
		t.Errorf("meridian q = %v, want 0", q)
	}

	// Odd in hour angle.
	q1 := ParallacticAngle(0.3, 0.2, 0.5)
	q2 := ParallacticAngle(-0.3, 0.2, 0.5)
	if math.Abs(q1+q2) > 1e-14 {
		t.Errorf("q(ha) = %v, q(-ha) = %v, want odd symmetry", q1, q2)
	}

	// Degenerate pole case returns zero.
	if q := ParallacticAngle(0.0, math.Pi/2, math.Pi/2); q != 0.0 {
		t.Errorf("pole q = %v, want 0", q)
	}
}

func TestSeparation(t *testing.T) {
	got := Separation(1.0, 0.1, 0.2, -3.0)
	if math.Abs(got-2.346722016996998842) > 1e-14 {
		t.Errorf("Separation = %.19f, want 2.346722016996998842", got)
	}
}

func TestSeparationVec(t *testing.T) {
	a := geom.Vec3{1.0, 0.1, 0.2}
	b := geom.Vec3{-3.0, 1e-3, 0.2}
	got := SeparationVec(a, b)
	if math.Abs(got-2.860391919024660768) > 1e-14 {
		t.Errorf("SeparationVec = %.19f, want 2.860391919024660768", got)
	}

	// Identical directions separate by zero, antipodal by pi, and scale
	// does not matter.
	if got := SeparationVec(a, geom.Scale(7.0, a)); math.Abs(got) > 1e-14 {
		t.Errorf("parallel separation = %v", got)
	}
	if got := SeparationVec(a, geom.Scale(-2.0, a)); math.Abs(got-math.Pi) > 1e-14 {
		t.Errorf("antipodal separation = %v", got)
	}
	if got := SeparationVec(geom.Vec3{}, a); got != 0.0 {
		t.Errorf("zero-vector separation = %v", got)
	}
}
