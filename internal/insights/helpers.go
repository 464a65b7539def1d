package insights

import (
	"math"
	"sort"
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

const dayKeyLayout = "2006-01-02"

// percent returns round(100*part/total), or 0 when total is zero.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

func mean(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

// sortedByStart returns a copy ordered oldest first. Analyzers sort a copy
// so the caller's slice stays untouched.
func sortedByStart(sessions []internal.TimerSession) []internal.TimerSession {
	out := make([]internal.TimerSession, len(sessions))
	copy(out, sessions)
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func dayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// activeDayKeys returns the distinct local calendar dates with at least one
// session, sorted ascending.
func activeDayKeys(sessions []internal.TimerSession) []string {
	seen := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		seen[dayKey(s.StartTime)] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// relativeDelta returns (current-previous)/previous, with an empty previous
// period mapping any current activity to +1 rather than dividing by zero.
func relativeDelta(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 1
		}
		return 0
	}
	return (current - previous) / previous
}

// sampleConfidence applies the shared low/medium/high thresholds used by the
// peak-hours and duration analyzers.
func sampleConfidence(n int) Confidence {
	switch {
	case n >= 20:
		return ConfidenceHigh
	case n >= 10:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
