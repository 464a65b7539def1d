package insights

import "fmt"

// attachMessages fills the human-readable Message fields from fixed
// templates. Pure formatting over already-computed metrics.
func attachMessages(ins *Insights) {
	ins.ProductivityScore.Message = scoreMessage(ins.ProductivityScore)
	ins.Consistency.Message = consistencyMessage(ins.Consistency)
	ins.WeeklySummary.Message = weeklyMessage(ins.WeeklySummary)
	ins.DurationPattern.Message = durationMessage(ins.DurationPattern)
	ins.ProductivityTrend.Message = trendMessage(ins.ProductivityTrend)
	if ins.PeakHours != nil {
		ins.PeakHours.Message = peakHoursMessage(*ins.PeakHours)
	}
	if ins.ModeMastery != nil {
		ins.ModeMastery.Message = modeMasteryMessage(*ins.ModeMastery)
	}
}

func scoreMessage(s ProductivityScore) string {
	switch s.Grade {
	case "A+", "A":
		return fmt.Sprintf("Outstanding! Your productivity score is %d (%s). Keep doing what you're doing.", s.Overall, s.Grade)
	case "B":
		return fmt.Sprintf("Solid work. Your productivity score is %d (%s) with room to push higher.", s.Overall, s.Grade)
	case "C", "D":
		return fmt.Sprintf("Your productivity score is %d (%s). Small, regular sessions will lift it quickly.", s.Overall, s.Grade)
	default:
		return fmt.Sprintf("Your productivity score is %d (%s). Every session counts - start small.", s.Overall, s.Grade)
	}
}

func consistencyMessage(c Consistency) string {
	if c.CurrentStreak >= 3 {
		return fmt.Sprintf("You're on a %d-day streak! Your longest is %d days.", c.CurrentStreak, c.LongestStreak)
	}
	if c.LongestStreak >= 3 {
		return fmt.Sprintf("Your longest streak is %d days. A session today starts a new one.", c.LongestStreak)
	}
	return fmt.Sprintf("You've been active on %d days so far.", c.ActiveDays)
}

func weeklyMessage(w WeeklySummary) string {
	if w.TotalSessions == 0 {
		return "No sessions in the last 7 days."
	}
	return fmt.Sprintf("This week: %d sessions across %d days, %d%% completed.",
		w.TotalSessions, w.ActiveDays, w.CompletionRate)
}

func durationMessage(d DurationPattern) string {
	if d.AverageDuration == 0 {
		return "No duration data yet."
	}
	msg := fmt.Sprintf("Your average session runs %.0f minutes", d.AverageDuration/60)
	switch d.Trend {
	case DurationIncreasing:
		return msg + " and your sessions are getting longer."
	case DurationDecreasing:
		return msg + " and your sessions are getting shorter."
	default:
		return msg + "."
	}
}

func trendMessage(t ProductivityTrend) string {
	switch t.Trend {
	case TrendUp:
		return fmt.Sprintf("You're trending up: %.0f%% more sessions than last week.", t.SessionChangePct)
	case TrendDown:
		return fmt.Sprintf("Activity is down %.0f%% from last week.", -t.SessionChangePct)
	default:
		return "Your activity is holding steady week over week."
	}
}

func peakHoursMessage(p PeakHours) string {
	return fmt.Sprintf("Your peak window is %02d:00-%02d:59 with %d sessions (%d%% completed).",
		p.StartHour, p.EndHour, p.SessionsCount, p.CompletionRate)
}

var modeEmoji = map[string]string{
	"stopwatch": "⏱️",
	"countdown": "⏳",
	"intervals": "🔁",
}

func modeMasteryMessage(m ModeMastery) string {
	if m.BestMode == "" {
		return "Not enough mode data yet."
	}
	emoji := modeEmoji[string(m.BestMode)]
	return fmt.Sprintf("%s %s is your strongest mode.", emoji, string(m.BestMode))
}
