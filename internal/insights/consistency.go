package insights

import (
	"math"
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

// activeRatioWindowDays caps the span used for the active-day ratio so old
// histories do not drown out recent habits.
const activeRatioWindowDays = 30

// AnalyzeConsistency derives streaks and a 0-100 cadence score from the set
// of distinct local calendar days with at least one session. A streak is
// alive only while its most recent active day is today or yesterday.
func AnalyzeConsistency(sessions []internal.TimerSession, now time.Time) Consistency {
	if len(sessions) == 0 {
		return Consistency{Trend: ConsistencyStable}
	}

	days := activeDayKeys(sessions)
	activeDays := len(days)
	active := make(map[string]struct{}, activeDays)
	for _, d := range days {
		active[d] = struct{}{}
	}

	current := currentStreak(active, now)
	longest := longestStreak(days)
	regularity := regularityScore(days)

	spanDays := int(now.Local().Sub(firstStart(sessions).Local()).Hours()/24) + 1
	if spanDays < 1 {
		spanDays = 1
	}
	if spanDays > activeRatioWindowDays {
		spanDays = activeRatioWindowDays
	}
	ratioDays := activeDays
	if ratioDays > spanDays {
		ratioDays = spanDays
	}
	activeRatio := float64(ratioDays) / float64(spanDays)

	streakScore := float64(current) / 7 * 100
	if streakScore > 100 {
		streakScore = 100
	}

	score := 0.4*activeRatio*100 + 0.3*streakScore + 0.3*float64(regularity)

	return Consistency{
		Score:           clampScore(score),
		CurrentStreak:   current,
		LongestStreak:   longest,
		ActiveDays:      activeDays,
		AvgSessionsDay:  mean(len(sessions), activeDays),
		RegularityScore: regularity,
		Trend:           consistencyTrend(sessions, now),
	}
}

func firstStart(sessions []internal.TimerSession) time.Time {
	first := sessions[0].StartTime
	for _, s := range sessions[1:] {
		if s.StartTime.Before(first) {
			first = s.StartTime
		}
	}
	return first
}

// currentStreak walks backward from today (or yesterday, if today is idle)
// while each preceding day is active. A last-active day older than yesterday
// means the streak is broken: zero.
func currentStreak(active map[string]struct{}, now time.Time) int {
	day := now.Local()
	if _, ok := active[dayKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
		if _, ok := active[dayKey(day)]; !ok {
			return 0
		}
	}
	streak := 0
	for {
		if _, ok := active[dayKey(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// longestStreak finds the maximum run of consecutive active days anywhere in
// history. Keys are sorted ascending yyyy-mm-dd strings.
func longestStreak(days []string) int {
	longest, run := 0, 0
	var prev time.Time
	for i, d := range days {
		t, err := time.ParseInLocation(dayKeyLayout, d, time.Local)
		if err != nil {
			continue
		}
		if i > 0 && t.Sub(prev) <= 36*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = t
	}
	return longest
}

// regularityScore maps the dispersion of gaps between consecutive active
// days to 0-100: an even cadence (all gaps equal) scores 100, an erratic one
// tends toward 0. Uses the coefficient of variation of the gap lengths.
func regularityScore(days []string) int {
	if len(days) < 2 {
		if len(days) == 1 {
			return 50
		}
		return 0
	}
	gaps := make([]float64, 0, len(days)-1)
	var prev time.Time
	for i, d := range days {
		t, err := time.ParseInLocation(dayKeyLayout, d, time.Local)
		if err != nil {
			continue
		}
		if i > 0 {
			gaps = append(gaps, math.Round(t.Sub(prev).Hours()/24))
		}
		prev = t
	}
	if len(gaps) == 0 {
		return 0
	}

	sum := 0.0
	for _, g := range gaps {
		sum += g
	}
	avg := sum / float64(len(gaps))
	if avg == 0 {
		return 100
	}
	variance := 0.0
	for _, g := range gaps {
		variance += (g - avg) * (g - avg)
	}
	cv := math.Sqrt(variance/float64(len(gaps))) / avg

	return clampScore(100 * (1 - cv))
}

// consistencyTrend compares session density of the trailing 7 days against
// the 7 days before that.
func consistencyTrend(sessions []internal.TimerSession, now time.Time) ConsistencyTrend {
	recent, previous := 0, 0
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	for _, s := range sessions {
		switch {
		case s.StartTime.After(weekAgo):
			recent++
		case s.StartTime.After(twoWeeksAgo):
			previous++
		}
	}
	if recent == 0 && previous == 0 {
		return ConsistencyStable
	}
	delta := relativeDelta(float64(recent), float64(previous))
	switch {
	case delta > trendDeltaThreshold:
		return ConsistencyImproving
	case delta < -trendDeltaThreshold:
		return ConsistencyDeclining
	default:
		return ConsistencyStable
	}
}
