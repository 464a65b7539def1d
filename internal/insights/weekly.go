package insights

import (
	"sort"
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

// GenerateWeeklySummary extracts highlights from the trailing 7-day window.
// Most productive day is the one with the highest total duration, ties
// broken by session count.
func GenerateWeeklySummary(sessions []internal.TimerSession, now time.Time) WeeklySummary {
	weekAgo := now.AddDate(0, 0, -7)

	type dayTotals struct {
		duration int
		sessions int
	}
	days := make(map[string]*dayTotals)

	var summary WeeklySummary
	completed := 0
	for _, s := range sessions {
		if !s.StartTime.After(weekAgo) || s.StartTime.After(now) {
			continue
		}
		summary.TotalSessions++
		summary.TotalDuration += s.Duration
		if s.Completed {
			completed++
		}
		if s.Duration > summary.LongestSessionSecs {
			summary.LongestSessionSecs = s.Duration
			summary.LongestSessionMode = s.Mode
		}

		key := dayKey(s.StartTime)
		if days[key] == nil {
			days[key] = &dayTotals{}
		}
		days[key].duration += s.Duration
		days[key].sessions++
	}

	summary.ActiveDays = len(days)
	summary.CompletionRate = percent(completed, summary.TotalSessions)

	// Iterate day keys sorted so ties resolve deterministically.
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var best *dayTotals
	for _, k := range keys {
		d := days[k]
		if best == nil || d.duration > best.duration ||
			(d.duration == best.duration && d.sessions > best.sessions) {
			best = d
			summary.MostProductiveDay = k
		}
	}

	return summary
}
