package insights

import (
	"math"
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

// AnalyzeProductivityTrend compares the last 7 days against the 7 days
// before that. An empty previous period with any current activity reports a
// defined +100% change instead of dividing by zero.
func AnalyzeProductivityTrend(sessions []internal.TimerSession, now time.Time) ProductivityTrend {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var current, previous []internal.TimerSession
	for _, s := range sessions {
		switch {
		case s.StartTime.After(weekAgo) && !s.StartTime.After(now):
			current = append(current, s)
		case s.StartTime.After(twoWeeksAgo):
			previous = append(previous, s)
		}
	}

	cur := periodStats(current)
	prev := periodStats(previous)

	sessionChange := 100 * relativeDelta(float64(cur.Sessions), float64(prev.Sessions))
	durationChange := 100 * relativeDelta(float64(cur.TotalDuration), float64(prev.TotalDuration))

	trend := TrendStable
	if math.Abs(sessionChange) > 100*trendDeltaThreshold {
		if sessionChange > 0 {
			trend = TrendUp
		} else {
			trend = TrendDown
		}
	}

	return ProductivityTrend{
		Current:           cur,
		Previous:          prev,
		SessionChangePct:  math.Round(sessionChange),
		DurationChangePct: math.Round(durationChange),
		Trend:             trend,
	}
}

func periodStats(sessions []internal.TimerSession) PeriodStats {
	total, completed := 0, 0
	for _, s := range sessions {
		total += s.Duration
		if s.Completed {
			completed++
		}
	}
	return PeriodStats{
		Sessions:       len(sessions),
		TotalDuration:  total,
		AvgDuration:    mean(total, len(sessions)),
		CompletionRate: percent(completed, len(sessions)),
	}
}
