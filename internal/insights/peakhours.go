package insights

import "github.com/Gravirei/HabitFlow-sub005/internal"

const peakWindowHours = 3

// AnalyzePeakHours buckets sessions by start hour and finds the best
// contiguous 3-hour window by session count, wrapping across midnight.
// Ties go to the earliest-starting window.
func AnalyzePeakHours(sessions []internal.TimerSession) PeakHours {
	var dist [24]HourlyBucket
	for h := range dist {
		dist[h].Hour = h
	}
	for _, s := range sessions {
		h := s.StartTime.Local().Hour()
		dist[h].Sessions++
		if s.Completed {
			dist[h].Completed++
		}
	}

	bestStart, bestCount, bestCompleted := 0, -1, 0
	for start := 0; start < 24; start++ {
		count, completed := 0, 0
		for off := 0; off < peakWindowHours; off++ {
			b := dist[(start+off)%24]
			count += b.Sessions
			completed += b.Completed
		}
		if count > bestCount {
			bestStart, bestCount, bestCompleted = start, count, completed
		}
	}

	return PeakHours{
		StartHour:      bestStart,
		EndHour:        (bestStart + peakWindowHours - 1) % 24,
		SessionsCount:  bestCount,
		CompletionRate: percent(bestCompleted, bestCount),
		Distribution:   dist,
		Confidence:     sampleConfidence(len(sessions)),
	}
}
