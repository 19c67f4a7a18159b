package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKmSymmetry(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"nearby", 40.0, -73.0, 40.01, -73.01},
		{"cross hemisphere", 40.0, -73.0, -33.9, 151.2},
		{"equator", 0.0, 0.0, 0.0, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			forward := HaversineKm(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			backward := HaversineKm(tc.lat2, tc.lon2, tc.lat1, tc.lon1)
			assert.InDelta(t, forward, backward, 1e-9)
		})
	}
}

func TestHaversineKmIdentity(t *testing.T) {
	assert.InDelta(t, 0, HaversineKm(40.0, -73.0, 40.0, -73.0), 1e-9)
}

func TestHaversineKmKnownDistances(t *testing.T) {
	// Two users ~1.4 km apart in the same neighborhood.
	assert.InDelta(t, 1.40, HaversineKm(40.0, -73.0, 40.01, -73.01), 0.02)

	// ~100 km apart (0.9 degrees of latitude).
	assert.InDelta(t, 100.0, HaversineKm(40.0, -73.0, 40.9, -73.0), 1.0)

	// One degree of longitude on the equator.
	assert.InDelta(t, 111.19, HaversineKm(0, 0, 0, 1), 0.1)
}
