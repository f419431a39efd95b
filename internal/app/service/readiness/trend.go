package readiness

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

const trendThreshold = 5.0

// Trend compares the mean of the most recent 3 scores against the mean of
// the 3 preceding them. Scores are ordered oldest to newest. With fewer
// than 4 data points the trend is always stable, regardless of values.
func Trend(scores []int) TrendDirection {
	if len(scores) < 4 {
		return TrendStable
	}

	recent := scores[len(scores)-3:]
	prevStart := len(scores) - 6
	if prevStart < 0 {
		prevStart = 0
	}
	prior := scores[prevStart : len(scores)-3]

	diff := mean(recent) - mean(prior)
	switch {
	case diff >= trendThreshold:
		return TrendUp
	case diff <= -trendThreshold:
		return TrendDown
	default:
		return TrendStable
	}
}

func mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
