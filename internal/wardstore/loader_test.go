package wardstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/aqi-insights-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_YAML(t *testing.T) {
	wards, err := LoadFile(filepath.Join("testdata", "wards.yaml"))
	require.NoError(t, err)
	require.Len(t, wards, 2)

	n1 := wards[0]
	assert.Equal(t, "N1", n1.ID)
	assert.Equal(t, [2]float64{0, 0}, n1.Center)
	assert.Equal(t, domain.CategoryModerate, n1.Category)
	assert.Equal(t, domain.Pollutants{{Code: "so2", Value: 40}, {Code: "no2", Value: 40}, {Code: "pm25", Value: 12}}, n1.Pollutants)
	assert.Equal(t, []int{90, 92, 94}, n1.Trend)
	assert.Equal(t, domain.Weather{Temperature: 18.5, WindSpeed: 14}, n1.Weather)
	assert.Equal(t, []string{"Port", "Traffic"}, n1.PrimarySources)

	assert.Equal(t, "SO2", domain.SelectDominant(n1.Pollutants).Label)
	assert.Equal(t, 10.0, domain.Distance(wards[0], wards[1]))
}

func TestLoadFile_MockJSON(t *testing.T) {
	wards, err := LoadFile(filepath.Join("..", "..", "data", "mock", "wards.json"))
	require.NoError(t, err)
	require.Len(t, wards, 7)

	assert.Equal(t, "W01", wards[0].ID)
	assert.Equal(t, domain.Pollutants{}, wards[6].Pollutants)
	assert.Equal(t, "PM10", domain.SelectDominant(wards[3].Pollutants).Label)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.json"))
		assert.ErrorContains(t, err, "read ward file")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile(write("wards.csv", "id,aqi\n"))
		assert.ErrorContains(t, err, "unsupported ward file extension")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadFile(write("bad.json", "[{"))
		assert.ErrorContains(t, err, "decode bad.json")
	})

	t.Run("ward without id", func(t *testing.T) {
		_, err := LoadFile(write("noid.json", `[{"id":"a"},{"aqi":5}]`))
		assert.ErrorContains(t, err, "ward 1 has no id")
	})
}
