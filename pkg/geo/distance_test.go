package geo

import (
	"math"
	"testing"
)

func TestDistanceKnownCities(t *testing.T) {
	// Сан-Франциско -> Лос-Анджелес, около 559 км
	got := Distance(37.7749, -122.4194, 34.0522, -118.2437)
	if math.Abs(got-559) > 10 {
		t.Fatalf("SF-LA: expected ~559 km, got %.1f", got)
	}

	// Москва -> Санкт-Петербург, около 634 км
	got = Distance(55.7558, 37.6173, 59.9311, 30.3609)
	if math.Abs(got-634) > 10 {
		t.Fatalf("MSK-SPB: expected ~634 km, got %.1f", got)
	}
}

func TestDistanceZero(t *testing.T) {
	if got := Distance(40.0, -70.0, 40.0, -70.0); got != 0 {
		t.Fatalf("same point must be 0 km, got %f", got)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Distance(37.7749, -122.4194, 47.6062, -122.3321)
	b := Distance(47.6062, -122.3321, 37.7749, -122.4194)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance must be symmetric: %f vs %f", a, b)
	}
}
