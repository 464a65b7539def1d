package insights

import "github.com/Gravirei/HabitFlow-sub005/internal"

// AnalyzeModeMastery groups sessions by timer mode. All three modes are
// always reported, zeroed when unused. Best mode is the highest completion
// rate among modes with at least one session; ties break to the higher
// session count, then alphabetically.
func AnalyzeModeMastery(sessions []internal.TimerSession) ModeMastery {
	byMode := make(map[internal.TimerMode]*ModeStats, 3)
	modes := internal.AllTimerModes()
	stats := make([]ModeStats, len(modes))
	for i, m := range modes {
		stats[i] = ModeStats{Mode: m}
		byMode[m] = &stats[i]
	}

	for _, s := range sessions {
		ms, ok := byMode[s.Mode]
		if !ok {
			continue
		}
		ms.Sessions++
		ms.TotalDuration += s.Duration
		if s.Completed {
			ms.Completed++
		}
	}

	var best *ModeStats
	for i := range stats {
		ms := &stats[i]
		ms.CompletionRate = percent(ms.Completed, ms.Sessions)
		ms.AvgDuration = mean(ms.TotalDuration, ms.Sessions)
		if ms.Sessions == 0 {
			continue
		}
		if best == nil ||
			ms.CompletionRate > best.CompletionRate ||
			(ms.CompletionRate == best.CompletionRate && ms.Sessions > best.Sessions) {
			best = ms
		}
	}

	m := ModeMastery{Modes: stats, Confidence: modeConfidence(len(sessions))}
	if best != nil {
		m.BestMode = best.Mode
	}
	return m
}

func modeConfidence(n int) Confidence {
	switch {
	case n >= 30:
		return ConfidenceHigh
	case n >= 20:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
