package precnut

import (
	"math"
	"testing"

	"github.com/orient/orientgo/internal/geom"
	"github.com/orient/orientgo/internal/units"
)

func TestMeanObliquity(t *testing.T) {
	got := MeanObliquity(2400000.5, 54388.0)
	if math.Abs(got-0.4090749229387258204) > 1e-14 {
		t.Errorf("MeanObliquity = %.19f, want 0.4090749229387258204", got)
	}
}

func TestFWAngles(t *testing.T) {
	gamb, phib, psib, epsa := FWAngles(2400000.5, 50123.9999)

	if math.Abs(gamb-(-0.2243387670997995690e-5)) > 1e-16 {
		t.Errorf("gamb = %.19e", gamb)
	}
	if math.Abs(phib-0.4091014602391312808) > 1e-12 {
		t.Errorf("phib = %.19f", phib)
	}
	if math.Abs(psib-(-0.9501954178013031895e-3)) > 1e-14 {
		t.Errorf("psib = %.19e", psib)
	}
	if math.Abs(epsa-0.4091014316587367491) > 1e-12 {
		t.Errorf("epsa = %.19f", epsa)
	}
}

func TestPrecessionAnglesAtJ2000(t *testing.T) {
	a := PrecessionAngles(units.J2000, 0.0)

	eps0 := 84381.406 * units.ArcsecToRad
	if a.Eps0 != eps0 {
		t.Errorf("Eps0 = %v, want %v", a.Eps0, eps0)
	}
	if a.EpsA != a.Eps0 || a.OmA != a.Eps0 || a.Phi != a.Eps0 {
		t.Errorf("EpsA/OmA/Phi = %v/%v/%v, want all %v at epoch", a.EpsA, a.OmA, a.Phi, a.Eps0)
	}

	// The t-proportional angles vanish at the epoch.
	for name, v := range map[string]float64{
		"PsiA": a.PsiA, "PA": a.PA, "QA": a.QA, "PiA": a.PiA,
		"ChiA": a.ChiA, "ThetaA": a.ThetaA, "PrecA": a.PrecA,
		"Gamma": a.Gamma, "Psi": a.Psi,
	} {
		if v != 0.0 {
			t.Errorf("%s = %v, want 0 at epoch", name, v)
		}
	}

	// The 323 Euler angles carry equal and opposite frame-bias constants.
	bias := 2.650545 * units.ArcsecToRad
	if math.Abs(a.ZetaA-bias) > 1e-20 || math.Abs(a.ZA+bias) > 1e-20 {
		t.Errorf("ZetaA = %v, ZA = %v, want +/-%v at epoch", a.ZetaA, a.ZA, bias)
	}
}

func TestPrecessionMatrix(t *testing.T) {
	got := PrecessionMatrix(2400000.5, 50123.9999)
	want := geom.Mat3{
		{0.9999995505176007047, 0.8695404617348208406e-3, 0.3779735201865589104e-3},
		{-0.8695404723772031414e-3, 0.9999996219496027161, -0.1361752497080270143e-6},
		{-0.3779734957034089490e-3, -0.1924880847894457113e-6, 0.9999999285679971958},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-want[i][j]) > 1e-11 {
				t.Errorf("[%d][%d] = %.19f, want %.19f", i, j, got[i][j], want[i][j])
			}
		}
	}
}

// The nutation series here is truncated to the leading luni-solar terms, so
// the bias-precession-nutation matrix is compared against the full-series
// values at a loosened tolerance.
func TestNPBMatrix(t *testing.T) {
	got := NPBMatrix(2400000.5, 50123.9999)
	want := geom.Mat3{
		{0.9999995832794205484, 0.8372382772630962111e-3, 0.3639684771140623099e-3},
		{-0.8372533744743683605e-3, 0.9999996486492861646, 0.4132905944611019498e-4},
		{-0.3639337469629464969e-3, -0.4163377605910663999e-4, 0.9999999329094260057},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-want[i][j]) > 1e-7 {
				t.Errorf("[%d][%d] = %.19f, want %.19f", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestNPBMatrixOrthonormal(t *testing.T) {
	m := NPBMatrix(2400000.5, 53736.0)

	for i := 0; i < 3; i++ {
		row := geom.Vec3{m[i][0], m[i][1], m[i][2]}
		if math.Abs(geom.Norm(row)-1.0) > 1e-14 {
			t.Errorf("row %d norm = %v, want 1", i, geom.Norm(row))
		}
		for j := i + 1; j < 3; j++ {
			other := geom.Vec3{m[j][0], m[j][1], m[j][2]}
			if math.Abs(geom.Dot(row, other)) > 1e-14 {
				t.Errorf("rows %d,%d dot = %v, want 0", i, j, geom.Dot(row, other))
			}
		}
	}

	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if math.Abs(det-1.0) > 1e-14 {
		t.Errorf("det = %v, want +1", det)
	}
}

func TestCIPCoordinates(t *testing.T) {
	m := geom.Mat3{
		{9.999962358680738e-1, -2.516417057665452e-3, -1.093569785342370e-3},
		{2.516462370370876e-3, 9.999968329010883e-1, 4.006159587358310e-5},
		{1.093465510215479e-3, -4.281337229063151e-5, 9.999994012499173e-1},
	}
	x, y := CIPCoordinates(&m)
	if x != m[2][0] || y != m[2][1] {
		t.Errorf("CIPCoordinates = (%v, %v), want bottom row (%v, %v)", x, y, m[2][0], m[2][1])
	}
}

func TestEquationOfOrigins(t *testing.T) {
	rnpb := geom.Mat3{
		{0.9999989440476103608, -0.1332881761240011518e-2, -0.5790767434730085097e-3},
		{0.1332858254308954453e-2, 0.9999991109044505944, -0.4097782710401555759e-4},
		{0.5791308472168153320e-3, 0.4020595661593994396e-4, 0.9999998314954572365},
	}
	s := -0.1220040848472271978e-7

	got := EquationOfOrigins(&rnpb, s)
	if math.Abs(got-(-0.1332882715130744606e-2)) > 1e-14 {
		t.Errorf("EquationOfOrigins = %.19e, want -0.1332882715130744606e-2", got)
	}

	// For the identity matrix the equation of the origins degenerates to s.
	i := geom.Identity()
	if got := EquationOfOrigins(&i, s); got != s {
		t.Errorf("EquationOfOrigins(I, s) = %v, want %v", got, s)
	}
}
