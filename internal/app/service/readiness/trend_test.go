package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   TrendDirection
	}{
		{name: "empty", scores: nil, want: TrendStable},
		{name: "single point is stable regardless of value", scores: []int{10}, want: TrendStable},
		{name: "two points", scores: []int{10, 90}, want: TrendStable},
		{name: "three points", scores: []int{10, 50, 90}, want: TrendStable},
		{name: "four points rising", scores: []int{50, 80, 80, 80}, want: TrendUp},
		{name: "six points rising", scores: []int{50, 50, 50, 70, 70, 70}, want: TrendUp},
		{name: "six points falling", scores: []int{80, 80, 80, 60, 60, 60}, want: TrendDown},
		{name: "difference below threshold is stable", scores: []int{70, 70, 70, 74, 74, 74}, want: TrendStable},
		{name: "exactly plus five is up", scores: []int{70, 70, 70, 75, 75, 75}, want: TrendUp},
		{name: "exactly minus five is down", scores: []int{75, 75, 75, 70, 70, 70}, want: TrendDown},
		{name: "five points uses two priors", scores: []int{60, 60, 70, 70, 70}, want: TrendUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trend(tt.scores))
		})
	}
}
