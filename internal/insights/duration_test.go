package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

func TestAnalyzeDurationPatternBuckets(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	sessions := []internal.TimerSession{
		sessionAt(day, 120, false),                    // <5min
		sessionAt(day.Add(time.Hour), 600, true),      // 5-15min
		sessionAt(day.Add(2*time.Hour), 1500, true),   // 15-30min
		sessionAt(day.Add(3*time.Hour), 1500, true),   // 15-30min
		sessionAt(day.Add(4*time.Hour), 4000, false),  // >60min
	}

	p := AnalyzeDurationPattern(sessions)
	assert.Len(t, p.Buckets, 5)
	assert.Equal(t, 1, p.Buckets[0].Count)
	assert.Equal(t, 1, p.Buckets[1].Count)
	assert.Equal(t, 2, p.Buckets[2].Count)
	assert.Equal(t, 0, p.Buckets[3].Count)
	assert.Equal(t, 1, p.Buckets[4].Count)
	assert.Equal(t, 100, p.Buckets[2].CompletionRate)
	assert.Equal(t, 0, p.Buckets[3].CompletionRate)

	// 5-15min and 15-30min are both at 100%; the shortest wins.
	assert.Equal(t, 300, p.OptimalMinSeconds)
	assert.Equal(t, 900, p.OptimalMaxSeconds)
	assert.InDelta(t, (120+600+1500+1500+4000)/5.0, p.AverageDuration, 0.001)
}

func TestAnalyzeDurationPatternEmpty(t *testing.T) {
	p := AnalyzeDurationPattern(nil)
	assert.Len(t, p.Buckets, 5)
	assert.Equal(t, 0, p.OptimalMinSeconds)
	assert.Equal(t, 0, p.OptimalMaxSeconds)
	assert.Zero(t, p.AverageDuration)
	assert.Equal(t, DurationStable, p.Trend)
	assert.Equal(t, ConfidenceLow, p.Confidence)
}

func TestDurationTrendIncreasing(t *testing.T) {
	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	sessions := []internal.TimerSession{
		sessionAt(day, 600, true),
		sessionAt(day.AddDate(0, 0, 1), 600, true),
		sessionAt(day.AddDate(0, 0, 2), 1200, true),
		sessionAt(day.AddDate(0, 0, 3), 1200, true),
	}
	assert.Equal(t, DurationIncreasing, AnalyzeDurationPattern(sessions).Trend)

	// Order of the input must not matter.
	shuffled := []internal.TimerSession{sessions[3], sessions[0], sessions[2], sessions[1]}
	assert.Equal(t, DurationIncreasing, AnalyzeDurationPattern(shuffled).Trend)
}

func TestDurationTrendStableWithinThreshold(t *testing.T) {
	day := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	sessions := []internal.TimerSession{
		sessionAt(day, 1000, true),
		sessionAt(day.AddDate(0, 0, 1), 1000, true),
		sessionAt(day.AddDate(0, 0, 2), 1050, true),
		sessionAt(day.AddDate(0, 0, 3), 1050, true),
	}
	assert.Equal(t, DurationStable, AnalyzeDurationPattern(sessions).Trend)
}

func TestBucketBoundaries(t *testing.T) {
	assert.Equal(t, 0, bucketIndex(0))
	assert.Equal(t, 0, bucketIndex(299))
	assert.Equal(t, 1, bucketIndex(300))
	assert.Equal(t, 2, bucketIndex(900))
	assert.Equal(t, 3, bucketIndex(1800))
	assert.Equal(t, 4, bucketIndex(3600))
	assert.Equal(t, 4, bucketIndex(100000))
}
