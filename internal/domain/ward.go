package domain

import (
	"context"
	"time"
)

// Category is the severity band assigned to a ward's AQI by the upstream classifier.
type Category string

const (
	CategoryGood     Category = "GOOD"
	CategoryModerate Category = "MODERATE"
	CategoryPoor     Category = "POOR"
	CategorySevere   Category = "SEVERE"
)

// Weather is passed through from the reading untouched.
type Weather struct {
	Temperature float64 `json:"temperature" yaml:"temperature"` // °C
	WindSpeed   float64 `json:"windSpeed" yaml:"windSpeed"`     // km/h
}

// Ward is one reading for a geographic subdivision. The engine only reads it.
type Ward struct {
	ID             string     `json:"id" yaml:"id"`
	Name           string     `json:"name" yaml:"name"`
	Zone           string     `json:"zone" yaml:"zone"`
	Center         [2]float64 `json:"center" yaml:"center"` // abstract planar grid, not lat/lon
	AQI            int        `json:"aqi" yaml:"aqi"`
	Category       Category   `json:"category" yaml:"category"`
	Pollutants     Pollutants `json:"pollutants" yaml:"pollutants"`
	Trend          []int      `json:"trend" yaml:"trend"` // chronological, most recent last
	Weather        Weather    `json:"weather" yaml:"weather"`
	Population     int        `json:"population" yaml:"population"`
	PrimarySources []string   `json:"primarySources" yaml:"primarySources"`
}

// NeighborWithDistance is a ward annotated with its distance from a reference ward.
type NeighborWithDistance struct {
	Ward
	Distance float64 `json:"distance"`
}

// DominantPollutant is the highest-concentration entry of a ward's pollutants.
type DominantPollutant struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TrendDirection is the short-term movement of a ward's AQI.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
