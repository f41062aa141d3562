package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ParseRawEvent deserializes a RawEvent's value into a Ward.
// Only the ID is required; readings are otherwise passed through as given.
func ParseRawEvent(raw RawEvent) (Ward, error) {
	var w Ward
	if err := json.Unmarshal(raw.Value, &w); err != nil {
		return Ward{}, fmt.Errorf("parse raw event: %w", err)
	}

	w.ID = strings.TrimSpace(w.ID)
	if w.ID == "" {
		return Ward{}, errors.New("parse raw event: missing ward id")
	}
	return w, nil
}

// SerializeInsight marshals a WardInsight into an OutputEvent keyed by ward ID.
func SerializeInsight(insight WardInsight) (OutputEvent, error) {
	data, err := json.Marshal(insight)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize ward insight: %w", err)
	}
	return OutputEvent{
		Key:   []byte(insight.Summary.WardID),
		Value: data,
		Headers: map[string]string{
			"ward_id":     insight.Summary.WardID,
			"category":    string(insight.Summary.Category),
			"trend":       string(insight.Summary.Trend),
			"computed_at": insight.ComputedAt.Format(time.RFC3339),
		},
	}, nil
}
