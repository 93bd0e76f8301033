package handlers

import "testing"

func TestValidateNearbyParams(t *testing.T) {
	tests := []struct {
		name             string
		lat, lng, radius float64
		wantErr          bool
	}{
		{name: "valid", lat: 37.7, lng: -122.4, radius: 10},
		{name: "radius zero", lat: 0, lng: 0, radius: 0},
		{name: "radius max", lat: 0, lng: 0, radius: 500},
		{name: "lat too high", lat: 90.1, lng: 0, radius: 10, wantErr: true},
		{name: "lat too low", lat: -90.1, lng: 0, radius: 10, wantErr: true},
		{name: "lng too high", lat: 0, lng: 180.1, radius: 10, wantErr: true},
		{name: "lng too low", lat: 0, lng: -180.1, radius: 10, wantErr: true},
		{name: "radius negative", lat: 0, lng: 0, radius: -1, wantErr: true},
		{name: "radius too large", lat: 0, lng: 0, radius: 501, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateNearbyParams(tt.lat, tt.lng, tt.radius)
			if tt.wantErr && got == "" {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && got != "" {
				t.Fatalf("unexpected validation error: %s", got)
			}
		})
	}
}
