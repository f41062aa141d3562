package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/aqi-insights-service/internal/domain"
	"github.com/couchcryptid/aqi-insights-service/internal/observability"
	"github.com/couchcryptid/aqi-insights-service/internal/wardstore"
)

// InsightTransformer implements Transformer. Each reading updates the ward
// repository and is then ranked against the repository's current snapshot.
type InsightTransformer struct {
	store   *wardstore.Store
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates an InsightTransformer backed by store.
func NewTransformer(store *wardstore.Store, logger *slog.Logger, metrics *observability.Metrics) *InsightTransformer {
	return &InsightTransformer{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

func (t *InsightTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	ward, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	if t.store.Upsert(ward) {
		t.logger.Debug("new ward tracked", "ward_id", ward.ID, "zone", ward.Zone)
	}
	t.metrics.WardsTracked.Set(float64(t.store.Len()))

	insight := domain.BuildWardInsight(ward, t.store.Snapshot())

	out, err := domain.SerializeInsight(insight)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	t.metrics.HotspotsFlagged.Add(float64(len(insight.Hotspots)))
	t.metrics.InsightsByTrend.WithLabelValues(string(insight.Summary.Trend)).Inc()
	return out, nil
}
