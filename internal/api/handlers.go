package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/orient/orientgo/internal/cio"
	"github.com/orient/orientgo/internal/geodetic"
	"github.com/orient/orientgo/internal/geom"
	"github.com/orient/orientgo/internal/metrics"
	"github.com/orient/orientgo/internal/precnut"
	"github.com/orient/orientgo/internal/sidereal"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// queryFloat parses a float query parameter. Missing parameters return the
// supplied default; malformed values report ok=false.
func queryFloat(r *http.Request, name string, def float64) (float64, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// siderealDates extracts the UT1 and TT two-part Julian Dates from the query
// string. ut1a is required; ut1b defaults to zero. The TT pair defaults to
// the UT1 pair, which costs about 100 microarcseconds of accuracy.
func siderealDates(r *http.Request) (uta, utb, tta, ttb float64, err error) {
	q := r.URL.Query()
	if q.Get("ut1a") == "" {
		return 0, 0, 0, 0, errors.New("missing required parameter ut1a")
	}
	uta, ok := queryFloat(r, "ut1a", 0)
	if !ok {
		return 0, 0, 0, 0, errors.New("invalid ut1a")
	}
	utb, ok = queryFloat(r, "ut1b", 0)
	if !ok {
		return 0, 0, 0, 0, errors.New("invalid ut1b")
	}
	tta, ok = queryFloat(r, "tta", uta)
	if !ok {
		return 0, 0, 0, 0, errors.New("invalid tta")
	}
	ttb, ok = queryFloat(r, "ttb", utb)
	if !ok {
		return 0, 0, 0, 0, errors.New("invalid ttb")
	}
	return uta, utb, tta, ttb, nil
}

func (s *Server) handleApparentSidereal(w http.ResponseWriter, r *http.Request) {
	uta, utb, tta, ttb, err := siderealDates(r)
	if err != nil {
		metrics.ObserveComputationError("sidereal_apparent")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rnpb := precnut.NPBMatrix(tta, ttb)
	x, y := precnut.CIPCoordinates(&rnpb)
	sloc := cio.LocatorS(tta, ttb, x, y)
	era := sidereal.EarthRotationAngle(uta, utb)
	eo := precnut.EquationOfOrigins(&rnpb, sloc)

	metrics.ObserveComputation("sidereal_apparent")
	writeJSON(w, http.StatusOK, map[string]float64{
		"era_rad":  era,
		"gast_rad": geom.NormalizeAngle(era - eo),
		"gmst_rad": sidereal.MeanSiderealTime(uta, utb, tta, ttb),
		"eo_rad":   eo,
	})
}

func (s *Server) handleMeanSidereal(w http.ResponseWriter, r *http.Request) {
	uta, utb, tta, ttb, err := siderealDates(r)
	if err != nil {
		metrics.ObserveComputationError("sidereal_mean")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.ObserveComputation("sidereal_mean")
	writeJSON(w, http.StatusOK, map[string]float64{
		"era_rad":  sidereal.EarthRotationAngle(uta, utb),
		"gmst_rad": sidereal.MeanSiderealTime(uta, utb, tta, ttb),
	})
}

type npbResponse struct {
	Matrix [3][3]float64 `json:"matrix"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	S      float64       `json:"s"`
}

func (s *Server) handleNPBMatrix(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("tta") == "" {
		metrics.ObserveComputationError("matrix_npb")
		writeError(w, http.StatusBadRequest, "missing required parameter tta")
		return
	}
	tta, ok := queryFloat(r, "tta", 0)
	if !ok {
		metrics.ObserveComputationError("matrix_npb")
		writeError(w, http.StatusBadRequest, "invalid tta")
		return
	}
	ttb, ok := queryFloat(r, "ttb", 0)
	if !ok {
		metrics.ObserveComputationError("matrix_npb")
		writeError(w, http.StatusBadRequest, "invalid ttb")
		return
	}

	rnpb := precnut.NPBMatrix(tta, ttb)
	x, y := precnut.CIPCoordinates(&rnpb)

	metrics.ObserveComputation("matrix_npb")
	writeJSON(w, http.StatusOK, npbResponse{
		Matrix: rnpb,
		X:      x,
		Y:      y,
		S:      cio.LocatorS(tta, ttb, x, y),
	})
}

// ellipsoidParams resolves the reference ellipsoid for a conversion request.
// A named ellipsoid takes precedence; otherwise explicit a/f values are used.
func ellipsoidParams(name string, a, f float64) (float64, float64, error) {
	if name != "" {
		e, ok := geodetic.ParseEllipsoid(name)
		if !ok {
			return 0, 0, errors.New("unknown ellipsoid " + name)
		}
		a, f = e.Params()
		return a, f, nil
	}
	if a == 0 && f == 0 {
		a, f = geodetic.WGS84.Params()
	}
	return a, f, nil
}

type toGeodeticRequest struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Ellipsoid string  `json:"ellipsoid,omitempty"`
	A         float64 `json:"a,omitempty"`
	F         float64 `json:"f,omitempty"`
}

func (s *Server) handleToGeodetic(w http.ResponseWriter, r *http.Request) {
	var req toGeodeticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ObserveComputationError("convert_geodetic")
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a, f, err := ellipsoidParams(req.Ellipsoid, req.A, req.F)
	if err != nil {
		metrics.ObserveComputationError("convert_geodetic")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lon, lat, height, err := geodetic.FromGeocentric(a, f, geom.Vec3{req.X, req.Y, req.Z})
	if err != nil {
		metrics.ObserveComputationError("convert_geodetic")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.ObserveComputation("convert_geodetic")
	writeJSON(w, http.StatusOK, map[string]float64{
		"lon_rad":  lon,
		"lat_rad":  lat,
		"height_m": height,
	})
}

type toGeocentricRequest struct {
	Lon       float64 `json:"lon_rad"`
	Lat       float64 `json:"lat_rad"`
	Height    float64 `json:"height_m"`
	Ellipsoid string  `json:"ellipsoid,omitempty"`
	A         float64 `json:"a,omitempty"`
	F         float64 `json:"f,omitempty"`
}

func (s *Server) handleToGeocentric(w http.ResponseWriter, r *http.Request) {
	var req toGeocentricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ObserveComputationError("convert_geocentric")
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a, f, err := ellipsoidParams(req.Ellipsoid, req.A, req.F)
	if err != nil {
		metrics.ObserveComputationError("convert_geocentric")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	xyz, err := geodetic.ToGeocentric(a, f, req.Lon, req.Lat, req.Height)
	if err != nil {
		metrics.ObserveComputationError("convert_geocentric")
		status := http.StatusBadRequest
		if errors.Is(err, geodetic.ErrUnrealistic) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	metrics.ObserveComputation("convert_geocentric")
	writeJSON(w, http.StatusOK, map[string]float64{
		"x": xyz[0],
		"y": xyz[1],
		"z": xyz[2],
	})
}

type ellipsoidInfo struct {
	Name       string  `json:"name"`
	A          float64 `json:"a"`
	InverseF   float64 `json:"inverse_f"`
	Flattening float64 `json:"f"`
}

func (s *Server) handleEllipsoids(w http.ResponseWriter, r *http.Request) {
	out := make([]ellipsoidInfo, 0, 3)
	for _, e := range []geodetic.Ellipsoid{geodetic.WGS84, geodetic.GRS80, geodetic.WGS72} {
		a, f := e.Params()
		out = append(out, ellipsoidInfo{
			Name:       e.String(),
			A:          a,
			InverseF:   1.0 / f,
			Flattening: f,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
