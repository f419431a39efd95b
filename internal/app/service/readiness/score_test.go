package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		today     Entry
		yesterday *Entry
		want      int
	}{
		{
			name:      "worst realistic day clamps low",
			today:     Entry{SleepHours: fptr(4), StressLevel: iptr(90), EnergyFocus: iptr(1)},
			yesterday: &Entry{TrainedToday: true, RPE: iptr(9)},
			// 100-35-20-25-15
			want: 5,
		},
		{
			name:  "all defaults land exactly on the elite boundary",
			today: Entry{},
			// 100-10-0-5
			want: 85,
		},
		{
			name:  "perfect day with energy bonus",
			today: Entry{SleepHours: fptr(8), StressLevel: iptr(10), EnergyFocus: iptr(5)},
			want:  100,
		},
		{
			name:      "bonus never pushes past 100",
			today:     Entry{SleepHours: fptr(9), StressLevel: iptr(0), EnergyFocus: iptr(5)},
			yesterday: &Entry{TrainedToday: false},
			want:      100,
		},
		{
			name:  "sleep bands are steps, not continuous",
			today: Entry{SleepHours: fptr(5.9), StressLevel: iptr(0), EnergyFocus: iptr(4)},
			want:  80,
		},
		{
			name:  "sleep exactly 7 still pays the short-sleep penalty",
			today: Entry{SleepHours: fptr(7), StressLevel: iptr(0), EnergyFocus: iptr(4)},
			want:  90,
		},
		{
			name:  "sleep above 7 has no penalty",
			today: Entry{SleepHours: fptr(7.5), StressLevel: iptr(0), EnergyFocus: iptr(4)},
			want:  100,
		},
		{
			name:  "stress exactly 80 uses the lower band",
			today: Entry{SleepHours: fptr(8), StressLevel: iptr(80), EnergyFocus: iptr(4)},
			want:  90,
		},
		{
			name:      "light training yesterday costs 5",
			today:     Entry{SleepHours: fptr(8), StressLevel: iptr(10), EnergyFocus: iptr(4)},
			yesterday: &Entry{TrainedToday: true, RPE: iptr(3)},
			want:      95,
		},
		{
			name:      "moderate rpe costs 10",
			today:     Entry{SleepHours: fptr(8), StressLevel: iptr(10), EnergyFocus: iptr(4)},
			yesterday: &Entry{TrainedToday: true, RPE: iptr(5)},
			want:      90,
		},
		{
			name:      "yesterday rested costs nothing",
			today:     Entry{SleepHours: fptr(8), StressLevel: iptr(10), EnergyFocus: iptr(4)},
			yesterday: &Entry{TrainedToday: false, RPE: iptr(9)},
			want:      100,
		},
		{
			name:      "trained yesterday with no rpe uses default 5",
			today:     Entry{SleepHours: fptr(8), StressLevel: iptr(10), EnergyFocus: iptr(4)},
			yesterday: &Entry{TrainedToday: true},
			want:      90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.today, tt.yesterday))
		})
	}
}

func TestScore_BoundsAndDeterminism(t *testing.T) {
	entries := []Entry{
		{},
		{SleepHours: fptr(0), StressLevel: iptr(100), EnergyFocus: iptr(1)},
		{SleepHours: fptr(24), StressLevel: iptr(0), EnergyFocus: iptr(5)},
		{SleepHours: fptr(6.5), StressLevel: iptr(61), EnergyFocus: iptr(2)},
	}
	yesterdays := []*Entry{
		nil,
		{TrainedToday: true, RPE: iptr(10)},
		{TrainedToday: true, RPE: iptr(0)},
	}

	for _, e := range entries {
		for _, y := range yesterdays {
			got := Score(e, y)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
			assert.Equal(t, got, Score(e, y), "identical inputs must score identically")
		}
	}
}

func TestClassify_BandsAreContiguousAndExhaustive(t *testing.T) {
	for score := 0; score <= 100; score++ {
		c := Classify(score)
		switch {
		case score >= 85:
			assert.Equal(t, LevelElite, c.Level, "score %d", score)
		case score >= 65:
			assert.Equal(t, LevelAlto, c.Level, "score %d", score)
		case score >= 40:
			assert.Equal(t, LevelModerado, c.Level, "score %d", score)
		default:
			assert.Equal(t, LevelRisco, c.Level, "score %d", score)
		}
		assert.NotEmpty(t, c.Label, "score %d", score)
		assert.NotEmpty(t, c.Recommendations, "score %d", score)
	}
}

func TestClassify_WorstDayIsRisco(t *testing.T) {
	score := Score(
		Entry{SleepHours: fptr(4), StressLevel: iptr(90), EnergyFocus: iptr(1)},
		&Entry{TrainedToday: true, RPE: iptr(9)},
	)
	assert.Equal(t, 5, score)
	assert.Equal(t, LevelRisco, Classify(score).Level)
}

func TestClassify_DefaultsAreElite(t *testing.T) {
	score := Score(Entry{}, nil)
	assert.Equal(t, 85, score)
	assert.Equal(t, LevelElite, Classify(score).Level)
}
