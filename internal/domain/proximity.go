package domain

import (
	"math"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// NearbyLimit is the number of closest wards reported as "nearby".
const NearbyLimit = 5

// GridUnitsPerKilometer is the scale the citizen view uses to turn grid
// distance into an approximate kilometre figure.
const GridUnitsPerKilometer = 10.0

// Distance returns the planar Euclidean distance between two ward centers.
// It is symmetric and zero only when the centers coincide. The value is in
// grid units, not kilometres.
func Distance(a, b Ward) float64 {
	return xy.Distance(centerCoord(a), centerCoord(b))
}

func centerCoord(w Ward) geom.Coord {
	return geom.Coord{w.Center[0], w.Center[1]}
}

// RankNeighbors orders every ward in population other than reference by
// ascending distance from it and keeps the closest NearbyLimit. The reference
// is excluded by ID. Equal distances keep their population order.
func RankNeighbors(reference Ward, population []Ward) []NeighborWithDistance {
	neighbors := make([]NeighborWithDistance, 0, len(population))
	for _, w := range population {
		if w.ID == reference.ID {
			continue
		}
		neighbors = append(neighbors, NeighborWithDistance{Ward: w, Distance: Distance(reference, w)})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	if len(neighbors) > NearbyLimit {
		neighbors = neighbors[:NearbyLimit]
	}
	return neighbors
}

// Kilometers converts the grid distance using an explicit scale factor.
// A non-positive scale returns the raw grid distance.
func (n NeighborWithDistance) Kilometers(gridUnitsPerKm float64) float64 {
	if gridUnitsPerKm <= 0 {
		return n.Distance
	}
	return n.Distance / gridUnitsPerKm
}

// ApproxKilometers is the rounded kilometre figure shown next to a nearby ward,
// using GridUnitsPerKilometer.
func (n NeighborWithDistance) ApproxKilometers() int {
	return int(math.Round(n.Kilometers(GridUnitsPerKilometer)))
}
