package domain

import (
	"errors"
	"time"
)

var (
	// ErrNoWards is returned when a reference is requested from an empty collection.
	ErrNoWards = errors.New("no wards available")

	// ErrWardNotFound is returned when a requested ward ID is not in the collection.
	ErrWardNotFound = errors.New("ward not found")
)

// SelectReference picks the reference ward for a citizen view. An empty id
// selects the first ward in the collection; this is the default used when the
// caller has no location for the user. A non-empty id must match a ward.
func SelectReference(wards []Ward, id string) (Ward, error) {
	if len(wards) == 0 {
		return Ward{}, ErrNoWards
	}
	if id == "" {
		return wards[0], nil
	}
	for _, w := range wards {
		if w.ID == id {
			return w, nil
		}
	}
	return Ward{}, ErrWardNotFound
}

// CitizenInsight is the localized view for one reference ward.
type CitizenInsight struct {
	Ward       Ward                   `json:"ward"`
	Nearby     []NeighborWithDistance `json:"nearby"`
	Hotspots   []NeighborWithDistance `json:"hotspots"`
	SafeZones  []NeighborWithDistance `json:"safeZones"`
	ComputedAt time.Time              `json:"computedAt"`
}

// BuildCitizenInsight ranks the reference's neighbors and buckets them.
func BuildCitizenInsight(reference Ward, population []Ward) CitizenInsight {
	nearby := RankNeighbors(reference, population)
	nb := ClassifyNeighbors(nearby)
	return CitizenInsight{
		Ward:       reference,
		Nearby:     nearby,
		Hotspots:   nb.Hotspots,
		SafeZones:  nb.SafeZones,
		ComputedAt: clock.Now().UTC(),
	}
}

// MonitorSummary is the live-monitoring card for a single ward.
type MonitorSummary struct {
	WardID         string            `json:"wardId"`
	Name           string            `json:"name"`
	Zone           string            `json:"zone"`
	AQI            int               `json:"aqi"`
	Category       Category          `json:"category"`
	Dominant       DominantPollutant `json:"dominantPollutant"`
	Trend          TrendDirection    `json:"trend"`
	Weather        Weather           `json:"weather"`
	Population     int               `json:"population"`
	PrimarySources []string          `json:"primarySources"`
	ComputedAt     time.Time         `json:"computedAt"`
}

// SummarizeWard extracts the dominant pollutant and trend for w.
func SummarizeWard(w Ward) MonitorSummary {
	return MonitorSummary{
		WardID:         w.ID,
		Name:           w.Name,
		Zone:           w.Zone,
		AQI:            w.AQI,
		Category:       w.Category,
		Dominant:       SelectDominant(w.Pollutants),
		Trend:          EstimateTrend(w.AQI, w.Trend),
		Weather:        w.Weather,
		Population:     w.Population,
		PrimarySources: w.PrimarySources,
		ComputedAt:     clock.Now().UTC(),
	}
}

// WardInsight combines both views for one ward. It is the record published
// downstream whenever a ward reading arrives.
type WardInsight struct {
	Summary    MonitorSummary         `json:"summary"`
	Nearby     []NeighborWithDistance `json:"nearby"`
	Hotspots   []NeighborWithDistance `json:"hotspots"`
	SafeZones  []NeighborWithDistance `json:"safeZones"`
	ComputedAt time.Time              `json:"computedAt"`
}

// BuildWardInsight derives every output for reference against population.
func BuildWardInsight(reference Ward, population []Ward) WardInsight {
	citizen := BuildCitizenInsight(reference, population)
	summary := SummarizeWard(reference)
	summary.ComputedAt = citizen.ComputedAt
	return WardInsight{
		Summary:    summary,
		Nearby:     citizen.Nearby,
		Hotspots:   citizen.Hotspots,
		SafeZones:  citizen.SafeZones,
		ComputedAt: citizen.ComputedAt,
	}
}
