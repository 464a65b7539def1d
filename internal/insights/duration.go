package insights

import "github.com/Gravirei/HabitFlow-sub005/internal"

// trendDeltaThreshold is the relative change below which period comparisons
// are reported as stable. Shared by the duration, consistency, and
// productivity-trend analyzers.
const trendDeltaThreshold = 0.10

type durationRange struct {
	label string
	min   int
	max   int // 0 = unbounded
}

var durationRanges = []durationRange{
	{"<5min", 0, 300},
	{"5-15min", 300, 900},
	{"15-30min", 900, 1800},
	{"30-60min", 1800, 3600},
	{">60min", 3600, 0},
}

func bucketIndex(durationSecs int) int {
	for i, r := range durationRanges {
		if r.max == 0 || durationSecs < r.max {
			return i
		}
	}
	return len(durationRanges) - 1
}

// AnalyzeDurationPattern buckets sessions into five fixed duration ranges,
// picks the bucket with the best completion rate as optimal (ties to the
// shortest bucket), and labels the duration drift by comparing the mean of
// the older half of the history against the newer half.
func AnalyzeDurationPattern(sessions []internal.TimerSession) DurationPattern {
	counts := make([]int, len(durationRanges))
	completed := make([]int, len(durationRanges))
	totalDuration := 0
	for _, s := range sessions {
		i := bucketIndex(s.Duration)
		counts[i]++
		if s.Completed {
			completed[i]++
		}
		totalDuration += s.Duration
	}

	buckets := make([]DurationBucket, len(durationRanges))
	optimal := -1
	for i, r := range durationRanges {
		buckets[i] = DurationBucket{
			Label:          r.label,
			MinSeconds:     r.min,
			MaxSeconds:     r.max,
			Count:          counts[i],
			CompletionRate: percent(completed[i], counts[i]),
		}
		if counts[i] > 0 && (optimal == -1 || buckets[i].CompletionRate > buckets[optimal].CompletionRate) {
			optimal = i
		}
	}

	p := DurationPattern{
		Buckets:         buckets,
		AverageDuration: mean(totalDuration, len(sessions)),
		Trend:           durationTrend(sessions),
		Confidence:      sampleConfidence(len(sessions)),
	}
	if optimal >= 0 {
		p.OptimalMinSeconds = durationRanges[optimal].min
		p.OptimalMaxSeconds = durationRanges[optimal].max
	}
	return p
}

func durationTrend(sessions []internal.TimerSession) DurationTrend {
	if len(sessions) < 4 {
		return DurationStable
	}
	ordered := sortedByStart(sessions)
	mid := len(ordered) / 2
	older, newer := ordered[:mid], ordered[mid:]

	olderTotal, newerTotal := 0, 0
	for _, s := range older {
		olderTotal += s.Duration
	}
	for _, s := range newer {
		newerTotal += s.Duration
	}

	delta := relativeDelta(mean(newerTotal, len(newer)), mean(olderTotal, len(older)))
	switch {
	case delta > trendDeltaThreshold:
		return DurationIncreasing
	case delta < -trendDeltaThreshold:
		return DurationDecreasing
	default:
		return DurationStable
	}
}
