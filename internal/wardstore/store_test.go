package wardstore

import (
	"sync"
	"testing"

	"github.com/couchcryptid/aqi-insights-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ward(id string, aqi int) domain.Ward {
	return domain.Ward{ID: id, AQI: aqi}
}

func ids(wards []domain.Ward) []string {
	out := make([]string, len(wards))
	for i, w := range wards {
		out[i] = w.ID
	}
	return out
}

func TestStore_UpsertKeepsArrivalOrder(t *testing.T) {
	s := New()

	assert.True(t, s.Upsert(ward("b", 10)))
	assert.True(t, s.Upsert(ward("a", 20)))
	assert.True(t, s.Upsert(ward("c", 30)))
	assert.False(t, s.Upsert(ward("b", 99)))

	assert.Equal(t, []string{"b", "a", "c"}, ids(s.Snapshot()))
	assert.Equal(t, 3, s.Len())

	got, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, 99, got.AQI)
}

func TestStore_NewDeduplicates(t *testing.T) {
	s := New(ward("x", 1), ward("y", 2), ward("x", 3))

	assert.Equal(t, []string{"x", "y"}, ids(s.Snapshot()))
	got, _ := s.Get("x")
	assert.Equal(t, 3, got.AQI)
}

func TestStore_GetMissing(t *testing.T) {
	_, ok := New().Get("nope")
	assert.False(t, ok)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := New(ward("a", 1))

	snap := s.Snapshot()
	snap[0].AQI = 500

	got, _ := s.Get("a")
	assert.Equal(t, 1, got.AQI)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Upsert(ward(string(rune('a'+i%5)), i))
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, s.Len())
}
