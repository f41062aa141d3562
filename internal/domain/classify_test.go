package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNeighbors_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		aqi      int
		hotspot  bool
		safeZone bool
	}{
		{"clean", 0, false, true},
		{"safe boundary", 100, false, true},
		{"just above safe", 101, false, false},
		{"gap middle", 125, false, false},
		{"hotspot boundary", 150, false, false},
		{"just above hotspot", 151, true, false},
		{"hazardous", 420, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nb := ClassifyNeighbors([]NeighborWithDistance{{Ward: testWard("x", 1, 1, tt.aqi), Distance: 1}})
			assert.Equal(t, tt.hotspot, len(nb.Hotspots) == 1, "hotspot")
			assert.Equal(t, tt.safeZone, len(nb.SafeZones) == 1, "safe zone")
		})
	}
}

func TestClassifyNeighbors_PreservesOrder(t *testing.T) {
	neighbors := []NeighborWithDistance{
		{Ward: testWard("h1", 1, 0, 300), Distance: 1},
		{Ward: testWard("s1", 2, 0, 40), Distance: 2},
		{Ward: testWard("gap", 3, 0, 120), Distance: 3},
		{Ward: testWard("h2", 4, 0, 151), Distance: 4},
		{Ward: testWard("s2", 5, 0, 100), Distance: 5},
	}

	nb := ClassifyNeighbors(neighbors)

	assert.Equal(t, []string{"h1", "h2"}, neighborIDs(nb.Hotspots))
	assert.Equal(t, []string{"s1", "s2"}, neighborIDs(nb.SafeZones))
}

func TestClassifyNeighbors_Empty(t *testing.T) {
	nb := ClassifyNeighbors(nil)
	assert.NotNil(t, nb.Hotspots)
	assert.NotNil(t, nb.SafeZones)
	assert.Empty(t, nb.Hotspots)
	assert.Empty(t, nb.SafeZones)
}

func TestClassifyNeighbors_Partition(t *testing.T) {
	for aqi := 0; aqi <= 500; aqi++ {
		nb := ClassifyNeighbors([]NeighborWithDistance{{Ward: testWard("x", 0, 1, aqi), Distance: 1}})
		inHot := len(nb.Hotspots) == 1
		inSafe := len(nb.SafeZones) == 1
		inGap := aqi > SafeZoneThreshold && aqi <= HotspotThreshold

		count := 0
		for _, b := range []bool{inHot, inSafe, inGap} {
			if b {
				count++
			}
		}
		assert.Equal(t, 1, count, "aqi %d must fall in exactly one band", aqi)
	}
}
