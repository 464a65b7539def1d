package insights

import (
	"fmt"
	"sort"
)

// maxRecommendations caps the final list.
const maxRecommendations = 5

// Rule inspects assembled insights and yields zero or one recommendation.
// Rules are independent and evaluated in registration order.
type Rule func(ins *Insights) *Recommendation

// recommendationRules is the fixed cascade. The insufficient-data rule is
// handled separately in GenerateRecommendations because it short-circuits
// the whole list.
var recommendationRules = []Rule{
	ruleShortSessions,
	ruleMarathonSessions,
	rulePeakWindow,
	ruleLowConsistency,
	ruleBrokenStreak,
	ruleUnderusedMode,
	ruleDownwardTrend,
	ruleLowCompletion,
	ruleCongratulate,
}

// GenerateRecommendations evaluates the rule cascade against the insights,
// sorts the hits by priority (stable within a tier), and caps the list at
// five entries. Insufficient data yields a single build-more-data entry.
func GenerateRecommendations(ins *Insights) []Recommendation {
	if ins.DataQuality == QualityInsufficient {
		return []Recommendation{{
			ID:          "build-data",
			Category:    "data",
			Priority:    PriorityHigh,
			Icon:        "📊",
			Title:       "Build Your Data",
			Description: "Complete a few more timer sessions so we can spot your patterns. Five sessions unlock peak-hour analysis.",
			Actionable:  true,
		}}
	}

	var recs []Recommendation
	for _, rule := range recommendationRules {
		if r := rule(ins); r != nil {
			recs = append(recs, *r)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank(recs[i].Priority) < priorityRank(recs[j].Priority)
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func ruleShortSessions(ins *Insights) *Recommendation {
	avg := ins.DurationPattern.AverageDuration
	if avg == 0 || avg >= 10*60 {
		return nil
	}
	return &Recommendation{
		ID:          "longer-sessions",
		Category:    "duration",
		Priority:    PriorityMedium,
		Icon:        "⏰",
		Title:       "Try Longer Sessions",
		Description: fmt.Sprintf("Your sessions average %.0f minutes. Focus benefits tend to kick in around 15-25 minutes.", avg/60),
		Actionable:  true,
	}
}

func ruleMarathonSessions(ins *Insights) *Recommendation {
	if ins.DurationPattern.AverageDuration <= 60*60 {
		return nil
	}
	return &Recommendation{
		ID:          "schedule-breaks",
		Category:    "duration",
		Priority:    PriorityMedium,
		Icon:        "☕",
		Title:       "Schedule Breaks",
		Description: "Your sessions average over an hour. Splitting long stretches with short breaks protects focus quality.",
		Actionable:  true,
	}
}

func rulePeakWindow(ins *Insights) *Recommendation {
	ph := ins.PeakHours
	if ph == nil || ph.CompletionRate < 70 || ph.SessionsCount < 3 {
		return nil
	}
	return &Recommendation{
		ID:          "leverage-peak",
		Category:    "timing",
		Priority:    PriorityMedium,
		Icon:        "🌅",
		Title:       "Leverage Your Peak Hours",
		Description: fmt.Sprintf("You complete %d%% of sessions between %02d:00 and %02d:59. Protect that window for your hardest work.", ph.CompletionRate, ph.StartHour, ph.EndHour),
		Actionable:  true,
	}
}

func ruleLowConsistency(ins *Insights) *Recommendation {
	if ins.Consistency.Score >= 40 {
		return nil
	}
	return &Recommendation{
		ID:          "daily-habit",
		Category:    "consistency",
		Priority:    PriorityHigh,
		Icon:        "📅",
		Title:       "Build a Daily Habit",
		Description: "Your cadence is uneven. One short session at the same time every day beats occasional marathons.",
		Actionable:  true,
	}
}

func ruleBrokenStreak(ins *Insights) *Recommendation {
	c := ins.Consistency
	if c.CurrentStreak != 0 || c.LongestStreak < 3 {
		return nil
	}
	return &Recommendation{
		ID:          "resume-streak",
		Category:    "consistency",
		Priority:    PriorityHigh,
		Icon:        "🔥",
		Title:       "Restart Your Streak",
		Description: fmt.Sprintf("You previously held a %d-day streak. A single session today gets you moving again.", c.LongestStreak),
		Actionable:  true,
	}
}

func ruleUnderusedMode(ins *Insights) *Recommendation {
	mm := ins.ModeMastery
	if mm == nil || mm.BestMode == "" {
		return nil
	}
	total := ins.DataRange.SessionsAnalyzed
	for _, ms := range mm.Modes {
		if ms.Mode == mm.BestMode {
			if total > 0 && ms.Sessions*3 < total && ms.CompletionRate >= 70 {
				return &Recommendation{
					ID:          "use-best-mode",
					Category:    "modes",
					Priority:    PriorityLow,
					Icon:        modeEmoji[string(mm.BestMode)],
					Title:       "Use Your Best Mode More",
					Description: fmt.Sprintf("You complete %d%% of %s sessions but rarely pick that mode. Lean into what works.", ms.CompletionRate, ms.Mode),
					Actionable:  true,
				}
			}
			return nil
		}
	}
	return nil
}

func ruleDownwardTrend(ins *Insights) *Recommendation {
	if ins.ProductivityTrend.Trend != TrendDown {
		return nil
	}
	return &Recommendation{
		ID:          "back-on-track",
		Category:    "trend",
		Priority:    PriorityHigh,
		Icon:        "📉",
		Title:       "Get Back on Track",
		Description: fmt.Sprintf("Sessions are down %.0f%% from last week. Schedule one session for tomorrow morning to reverse the slide.", -ins.ProductivityTrend.SessionChangePct),
		Actionable:  true,
	}
}

func ruleLowCompletion(ins *Insights) *Recommendation {
	if ins.ProductivityScore.Breakdown.Completion >= 50 {
		return nil
	}
	return &Recommendation{
		ID:          "achievable-sessions",
		Category:    "completion",
		Priority:    PriorityMedium,
		Icon:        "🎯",
		Title:       "Set Achievable Sessions",
		Description: "Most of your sessions end early. Shorter targets you can actually finish build momentum faster.",
		Actionable:  true,
	}
}

func ruleCongratulate(ins *Insights) *Recommendation {
	if ins.ProductivityScore.Overall < 80 || ins.Consistency.Score < 70 {
		return nil
	}
	return &Recommendation{
		ID:          "keep-it-up",
		Category:    "praise",
		Priority:    PriorityLow,
		Icon:        "🏆",
		Title:       "You're Crushing It",
		Description: fmt.Sprintf("Score %d with a %d-day streak. Whatever your routine is, it's working.", ins.ProductivityScore.Overall, ins.Consistency.CurrentStreak),
		Actionable:  false,
	}
}
