package insights

import (
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

// Optimal average-session window for the duration sub-score, in seconds.
// Averages inside it score 100; shorter averages drop off steeply, longer
// ones taper at half the slope.
const (
	optimalDurationMin = 15 * 60
	optimalDurationMax = 45 * 60
)

// Sub-score weights. They sum to 1.
const (
	weightCompletion  = 0.25
	weightDuration    = 0.20
	weightConsistency = 0.25
	weightFrequency   = 0.15
	weightImprovement = 0.15
)

// frequencySaturation is the session count at which the frequency sub-score
// reaches 100.
const frequencySaturation = 50

// CalculateProductivityScore combines five weighted 0-100 sub-scores into an
// overall score and letter grade. An empty history scores zero across the
// board with grade F.
func CalculateProductivityScore(sessions []internal.TimerSession, now time.Time) ProductivityScore {
	if len(sessions) == 0 {
		return ProductivityScore{Grade: "F"}
	}

	completed, totalDuration := 0, 0
	for _, s := range sessions {
		totalDuration += s.Duration
		if s.Completed {
			completed++
		}
	}

	breakdown := ScoreBreakdown{
		Completion:  percent(completed, len(sessions)),
		Duration:    durationScore(mean(totalDuration, len(sessions))),
		Consistency: AnalyzeConsistency(sessions, now).Score,
		Frequency:   clampScore(float64(len(sessions)) / frequencySaturation * 100),
		Improvement: improvementScore(sessions),
	}

	overall := clampScore(
		weightCompletion*float64(breakdown.Completion) +
			weightDuration*float64(breakdown.Duration) +
			weightConsistency*float64(breakdown.Consistency) +
			weightFrequency*float64(breakdown.Frequency) +
			weightImprovement*float64(breakdown.Improvement))

	return ProductivityScore{
		Overall:   overall,
		Grade:     gradeFor(overall),
		Breakdown: breakdown,
	}
}

func durationScore(avgSecs float64) int {
	switch {
	case avgSecs >= optimalDurationMin && avgSecs <= optimalDurationMax:
		return 100
	case avgSecs < optimalDurationMin:
		return clampScore(avgSecs / optimalDurationMin * 100)
	default:
		// Long sessions lose points at half the rate short ones do.
		over := (avgSecs - optimalDurationMax) / optimalDurationMax
		return clampScore(100 - over*50)
	}
}

// improvementScore compares completion rate of the newer half of the history
// against the older half, centered at a neutral 50. Too little history stays
// neutral.
func improvementScore(sessions []internal.TimerSession) int {
	if len(sessions) < 6 {
		return 50
	}
	ordered := sortedByStart(sessions)
	mid := len(ordered) / 2
	older, newer := ordered[:mid], ordered[mid:]

	olderDone, newerDone := 0, 0
	for _, s := range older {
		if s.Completed {
			olderDone++
		}
	}
	for _, s := range newer {
		if s.Completed {
			newerDone++
		}
	}

	diff := percent(newerDone, len(newer)) - percent(olderDone, len(older))
	return clampScore(50 + float64(diff))
}

func gradeFor(overall int) string {
	switch {
	case overall >= 95:
		return "A+"
	case overall >= 85:
		return "A"
	case overall >= 70:
		return "B"
	case overall >= 55:
		return "C"
	case overall >= 40:
		return "D"
	default:
		return "F"
	}
}
