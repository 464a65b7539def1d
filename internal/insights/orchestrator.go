package insights

import (
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

// Sample-size gates. Peak hours and mode mastery are omitted entirely below
// their thresholds; the duration pattern and productivity trend are always
// computed and degrade via their confidence and stability labels instead.
const (
	minSessionsPeakHours   = 5
	minSessionsModeMastery = 10
)

func dataQuality(n int) DataQuality {
	switch {
	case n >= 50:
		return QualityExcellent
	case n >= 20:
		return QualityGood
	case n >= 5:
		return QualityLimited
	default:
		return QualityInsufficient
	}
}

// Generate runs every analyzer over the session bag and assembles the full
// Insights result, including messages and recommendations. The input is
// never mutated and may arrive in any order.
func Generate(sessions []internal.TimerSession, now time.Time) *Insights {
	ins := &Insights{
		GeneratedAt:       now,
		DataQuality:       dataQuality(len(sessions)),
		ProductivityScore: CalculateProductivityScore(sessions, now),
		Consistency:       AnalyzeConsistency(sessions, now),
		WeeklySummary:     GenerateWeeklySummary(sessions, now),
		DurationPattern:   AnalyzeDurationPattern(sessions),
		ProductivityTrend: AnalyzeProductivityTrend(sessions, now),
	}

	ins.DataRange.SessionsAnalyzed = len(sessions)
	if len(sessions) > 0 {
		first, last := sessions[0].StartTime, sessions[0].StartTime
		for _, s := range sessions[1:] {
			if s.StartTime.Before(first) {
				first = s.StartTime
			}
			if s.StartTime.After(last) {
				last = s.StartTime
			}
		}
		ins.DataRange.From = first
		ins.DataRange.To = last
	}

	if len(sessions) >= minSessionsPeakHours {
		ph := AnalyzePeakHours(sessions)
		ins.PeakHours = &ph
	}
	if len(sessions) >= minSessionsModeMastery {
		mm := AnalyzeModeMastery(sessions)
		ins.ModeMastery = &mm
	}

	attachMessages(ins)
	ins.Recommendations = GenerateRecommendations(ins)
	return ins
}
