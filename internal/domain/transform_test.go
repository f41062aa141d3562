package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWardJSON = `{
	"id": " W07 ",
	"name": "Karol Bagh",
	"zone": "Central",
	"center": [40, 30],
	"aqi": 182,
	"category": "POOR",
	"pollutants": {"pm10": 96, "pm25": 96, "no2": 38},
	"trend": [150, 165, 171],
	"weather": {"temperature": 24.5, "windSpeed": 6},
	"population": 120000,
	"primarySources": ["Traffic", "Construction"]
}`

func TestParseRawEvent(t *testing.T) {
	t.Run("full reading", func(t *testing.T) {
		w, err := ParseRawEvent(RawEvent{Value: []byte(testWardJSON)})

		require.NoError(t, err)
		assert.Equal(t, "W07", w.ID)
		assert.Equal(t, "Karol Bagh", w.Name)
		assert.Equal(t, "Central", w.Zone)
		assert.Equal(t, [2]float64{40, 30}, w.Center)
		assert.Equal(t, 182, w.AQI)
		assert.Equal(t, CategoryPoor, w.Category)
		assert.Equal(t, Pollutants{{"pm10", 96}, {"pm25", 96}, {"no2", 38}}, w.Pollutants)
		assert.Equal(t, []int{150, 165, 171}, w.Trend)
		assert.Equal(t, Weather{Temperature: 24.5, WindSpeed: 6}, w.Weather)
		assert.Equal(t, 120000, w.Population)
		assert.Equal(t, []string{"Traffic", "Construction"}, w.PrimarySources)
	})

	t.Run("document order decides pollutant tie", func(t *testing.T) {
		w, err := ParseRawEvent(RawEvent{Value: []byte(testWardJSON)})
		require.NoError(t, err)
		assert.Equal(t, DominantPollutant{Label: "PM10", Value: 96}, SelectDominant(w.Pollutants))
	})

	t.Run("negative aqi passed through", func(t *testing.T) {
		w, err := ParseRawEvent(RawEvent{Value: []byte(`{"id":"x","aqi":-4}`)})
		require.NoError(t, err)
		assert.Equal(t, -4, w.AQI)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte(`{"aqi": 40}`)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing ward id")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte("{invalid json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse raw event")
	})
}

func TestSerializeInsight(t *testing.T) {
	freezeClock(t)
	wards := gridWards()
	wards[0].Category = CategoryModerate

	out, err := SerializeInsight(BuildWardInsight(wards[0], wards))
	require.NoError(t, err)

	assert.Equal(t, []byte("ref"), out.Key)
	assert.Equal(t, "ref", out.Headers["ward_id"])
	assert.Equal(t, "MODERATE", out.Headers["category"])
	assert.Equal(t, "falling", out.Headers["trend"])
	assert.Equal(t, testNow.Format(time.RFC3339), out.Headers["computed_at"])

	var decoded WardInsight
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, "ref", decoded.Summary.WardID)
	assert.Equal(t, []string{"a", "e"}, neighborIDs(decoded.Hotspots))
	assert.Equal(t, 10.0, decoded.Nearby[0].Distance)
	assert.Equal(t, "N/A", decoded.Summary.Dominant.Label)
}
