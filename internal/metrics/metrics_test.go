package metrics

import "testing"

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		// Known exact routes.
		{"/", "/"},
		{"/healthz", "/healthz"},
		{"/readyz", "/readyz"},
		{"/metrics", "/metrics"},
		{"/api/v1/sidereal/apparent", "/api/v1/sidereal/apparent"},
		{"/api/v1/sidereal/mean", "/api/v1/sidereal/mean"},
		{"/api/v1/matrix/npb", "/api/v1/matrix/npb"},
		{"/api/v1/convert/geodetic", "/api/v1/convert/geodetic"},
		{"/api/v1/convert/geocentric", "/api/v1/convert/geocentric"},
		{"/api/v1/ellipsoids", "/api/v1/ellipsoids"},

		// Unknown API paths collapse to one label.
		{"/api/v1/sidereal/nope", "/api/v1/other"},
		{"/api/v1/convert", "/api/v1/other"},

		// Unknown/bot paths collapse to "other".
		{"/wp-admin", "other"},
		{"/robots.txt", "other"},
		{"/.env", "other"},
		{"/api/v2/something", "other"},
		{"/favicon.ico", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := normalizeRoute(tt.path)
			if got != tt.want {
				t.Errorf("normalizeRoute(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// TestMetricsCardinality verifies that arbitrary scanner paths produce a
// bounded label set rather than one label per path.
func TestMetricsCardinality(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		label := normalizeRoute("/api/v1/probe/" + string(rune('0'+i%10)) + string(rune('0'+i/10)))
		seen[label] = true
	}
	if len(seen) != 1 {
		t.Errorf("expected 1 unique label for unknown API paths, got %d: %v", len(seen), seen)
	}
}
