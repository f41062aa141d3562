package domain

// AQI thresholds for neighborhood buckets. Readings in (SafeZoneThreshold,
// HotspotThreshold] land in neither bucket.
const (
	HotspotThreshold  = 150 // aqi > 150
	SafeZoneThreshold = 100 // aqi <= 100
)

// Neighborhood splits nearby wards into hotspots and safe zones.
type Neighborhood struct {
	Hotspots  []NeighborWithDistance `json:"hotspots"`
	SafeZones []NeighborWithDistance `json:"safeZones"`
}

// ClassifyNeighbors buckets neighbors by AQI, preserving input order in both
// buckets. Either bucket may be empty.
func ClassifyNeighbors(neighbors []NeighborWithDistance) Neighborhood {
	nb := Neighborhood{
		Hotspots:  []NeighborWithDistance{},
		SafeZones: []NeighborWithDistance{},
	}
	for _, n := range neighbors {
		switch {
		case IsHotspot(n.AQI):
			nb.Hotspots = append(nb.Hotspots, n)
		case IsSafeZone(n.AQI):
			nb.SafeZones = append(nb.SafeZones, n)
		}
	}
	return nb
}

// IsHotspot reports whether an AQI reading is above the hotspot threshold.
func IsHotspot(aqi int) bool { return aqi > HotspotThreshold }

// IsSafeZone reports whether an AQI reading is at or below the safe-zone threshold.
func IsSafeZone(aqi int) bool { return aqi <= SafeZoneThreshold }
