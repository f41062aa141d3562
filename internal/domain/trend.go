package domain

// EstimateTrend compares the current AQI against the second-to-last history
// point. With fewer than two points the current value is its own reference,
// which resolves to TrendFalling. Equal values are also TrendFalling.
func EstimateTrend(currentAQI int, history []int) TrendDirection {
	reference := currentAQI
	if len(history) >= 2 {
		reference = history[len(history)-2]
	}
	if currentAQI > reference {
		return TrendRising
	}
	return TrendFalling
}
