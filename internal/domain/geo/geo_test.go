package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	if got := DistanceKm(12.9, 77.6, 12.9, 77.6); got != 0 {
		t.Errorf("distance to self = %v, want 0", got)
	}
}

func TestDistanceKm_OneDegreeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is R*pi/180 = 111.19 km.
	got := DistanceKm(0, 0, 0, 1)
	if math.Abs(got-111.19) > 0.01 {
		t.Errorf("DistanceKm(0,0,0,1) = %v, want ~111.19", got)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(12.9716, 77.5946, 13.0827, 80.2707)
	b := DistanceKm(13.0827, 80.2707, 12.9716, 77.5946)
	if a != b {
		t.Errorf("distance not symmetric: %v != %v", a, b)
	}
	if a < 250 || a > 330 {
		t.Errorf("Bengaluru-Chennai distance = %v, want ~290", a)
	}
}

func TestDistanceKm_RoundedToTwoDecimals(t *testing.T) {
	pts := [][4]float64{
		{12.9, 77.6, 12.93, 77.61},
		{0, 0, 0.5, 0.5},
		{51.5, -0.12, 48.85, 2.35},
	}
	for _, p := range pts {
		d := DistanceKm(p[0], p[1], p[2], p[3])
		if math.Abs(d*100-math.Round(d*100)) > 1e-9 {
			t.Errorf("DistanceKm(%v) = %v, not rounded to 2 decimals", p, d)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{1.234, 1.23},
		{1.236, 1.24},
		{0, 0},
		{5.4194, 5.42},
	}
	for _, tc := range tests {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon float64
		want     bool
	}{
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{90.1, 0, false},
		{0, 180.1, false},
		{-91, 0, false},
	}
	for _, tc := range tests {
		if got := ValidateCoordinates(tc.lat, tc.lon); got != tc.want {
			t.Errorf("ValidateCoordinates(%v, %v) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}
}
