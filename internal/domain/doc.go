// Package domain derives air-quality insights from ward readings.
//
// # Data Source
//
// Ward readings arrive as flat JSON records on the source topic, one record
// per ward per reading cycle. The same shape is used for seed files loaded
// at startup (JSON or YAML):
//
//	{
//	  "id": "W07", "name": "Karol Bagh", "zone": "Central",
//	  "center": [40, 30], "aqi": 182, "category": "POOR",
//	  "pollutants": {"pm25": 96, "pm10": 140, "no2": 38},
//	  "trend": [150, 165, 171],
//	  "weather": {"temperature": 24.5, "windSpeed": 6},
//	  "population": 120000, "primarySources": ["Traffic", "Construction"]
//	}
//
// Coordinates:
//
//	"center" is a point on an abstract planar grid, not latitude/longitude.
//	Distances are Euclidean grid units. The citizen view divides by
//	[GridUnitsPerKilometer] to show an approximate kilometre figure.
//
// Category:
//
//	GOOD, MODERATE, POOR or SEVERE, assigned upstream from the AQI. It is
//	carried through and never recomputed here.
//
// Pollutant order:
//
//	The order of keys in "pollutants" is significant. When two pollutants
//	share the highest concentration the first one listed is dominant, so
//	[Pollutants] keeps document order when decoding JSON and YAML.
//
// # Derivations
//
// Four pure functions, each reading only its arguments:
//
//	RankNeighbors      closest NearbyLimit wards by grid distance, ties in input order
//	ClassifyNeighbors  hotspots (aqi > 150) and safe zones (aqi <= 100)
//	SelectDominant     highest concentration, labelled "PM2.5", "PM10", "NO2", ...
//	EstimateTrend      current AQI against the second-to-last history point
//
// The band 100 < aqi <= 150 is in neither bucket. Empty
// pollutants yield {"N/A", 0}; fewer than two history points compare the
// current AQI with itself and report falling.
//
// Malformed readings (negative AQI, non-finite coordinates) are passed through
// unchanged; validation belongs to the producer.
package domain
