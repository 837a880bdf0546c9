package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/orient/orientgo/internal/cio"
	"github.com/orient/orientgo/internal/precnut"
	"github.com/orient/orientgo/internal/sidereal"
)

// julianDate converts a UTC time to a Julian Date using the standard
// astronomical algorithm.
func julianDate(t time.Time) float64 {
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Treat Jan/Feb as months 13/14 of the previous year.
	if m <= 2 {
		y -= 1
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}

func main() {
	now := time.Now().UTC()
	d1 := julianDate(now)
	d2 := 0.0

	// Optionally take an explicit two-part Julian Date from the command line.
	if len(os.Args) > 1 {
		v, err := strconv.ParseFloat(os.Args[1], 64)
		if err != nil {
			fmt.Println("ERROR parsing date part 1:", err)
			os.Exit(1)
		}
		d1, d2 = v, 0.0
	}
	if len(os.Args) > 2 {
		v, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			fmt.Println("ERROR parsing date part 2:", err)
			os.Exit(1)
		}
		d2 = v
	}

	// UT1 and TT are taken as equal here, which is fine at diagnostic
	// accuracy.
	fmt.Printf("Julian Date: %.9f + %.9f\n", d1, d2)

	era := sidereal.EarthRotationAngle(d1, d2)
	gmst := sidereal.MeanSiderealTime(d1, d2, d1, d2)
	gast := sidereal.ApparentSiderealTime(d1, d2, d1, d2)
	fmt.Printf("ERA  = %.12f rad\n", era)
	fmt.Printf("GMST = %.12f rad\n", gmst)
	fmt.Printf("GAST = %.12f rad\n", gast)

	rnpb := precnut.NPBMatrix(d1, d2)
	x, y := precnut.CIPCoordinates(&rnpb)
	s := cio.LocatorS(d1, d2, x, y)
	fmt.Printf("CIP  : X = %+.12e  Y = %+.12e\n", x, y)
	fmt.Printf("s    = %+.12e rad\n", s)
	fmt.Println("NPB  :")
	for i := 0; i < 3; i++ {
		fmt.Printf("  [%+.12f %+.12f %+.12f]\n", rnpb[i][0], rnpb[i][1], rnpb[i][2])
	}

	dpsi, deps := precnut.Nutation06(d1, d2)
	fmt.Printf("Nutation: dpsi = %+.6e rad  deps = %+.6e rad\n", dpsi, deps)

	// Compare against the IAU-82 GMST from go-satellite. The models differ
	// at the sub-arcsecond level for current dates.
	if len(os.Args) <= 1 {
		ref := satellite.GSTimeFromDate(
			now.Year(), int(now.Month()), now.Day(),
			now.Hour(), now.Minute(), now.Second(),
		)
		diffArcsec := (gmst - ref) * 180.0 / math.Pi * 3600.0
		fmt.Printf("GMST IAU-82 (go-satellite) = %.12f rad, diff = %+.3f arcsec\n", ref, diffArcsec)
	}
}
