package geodetic

import (
	"math"
	"testing"
)

func TestEllipsoidParams(t *testing.T) {
	tests := []struct {
		e    Ellipsoid
		a    float64
		invF float64
	}{
		{WGS84, 6378137.0, 298.257223563},
		{GRS80, 6378137.0, 298.257222101},
		{WGS72, 6378135.0, 298.26},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			a, f := tt.e.Params()
			if a != tt.a {
				t.Errorf("a = %v, want %v", a, tt.a)
			}
			if math.Abs(1.0/f-tt.invF) > 1e-9 {
				t.Errorf("1/f = %v, want %v", 1.0/f, tt.invF)
			}
		})
	}
}

func TestParseEllipsoid(t *testing.T) {
	for _, name := range []string{"WGS84", "wgs84", "GRS80", "wgs72"} {
		if _, ok := ParseEllipsoid(name); !ok {
			t.Errorf("ParseEllipsoid(%q) not recognized", name)
		}
	}
	if _, ok := ParseEllipsoid("BESSEL"); ok {
		t.Error("ParseEllipsoid(BESSEL) unexpectedly recognized")
	}
}
