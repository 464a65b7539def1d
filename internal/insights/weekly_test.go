package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

func TestWeeklySummaryEmptyWindow(t *testing.T) {
	// History exists but nothing in the trailing 7 days.
	sessions := []internal.TimerSession{
		sessionAt(testNow.AddDate(0, 0, -20), 1500, true),
	}
	w := GenerateWeeklySummary(sessions, testNow)
	assert.Zero(t, w.TotalSessions)
	assert.Zero(t, w.TotalDuration)
	assert.Zero(t, w.ActiveDays)
	assert.Zero(t, w.CompletionRate)
	assert.Empty(t, w.MostProductiveDay)
	assert.Zero(t, w.LongestSessionSecs)
}

func TestWeeklySummaryHighlights(t *testing.T) {
	busyDay := testNow.AddDate(0, 0, -2)
	long := sessionAt(testNow.AddDate(0, 0, -1), 3600, true)
	long.Mode = internal.ModeStopwatch

	sessions := []internal.TimerSession{
		sessionAt(busyDay, 1800, true),
		sessionAt(busyDay.Add(2*time.Hour), 1800, true),
		sessionAt(busyDay.Add(4*time.Hour), 900, false),
		long,
		sessionAt(testNow.AddDate(0, 0, -20), 7200, true), // outside window
	}

	w := GenerateWeeklySummary(sessions, testNow)
	assert.Equal(t, 4, w.TotalSessions)
	assert.Equal(t, 1800+1800+900+3600, w.TotalDuration)
	assert.Equal(t, 2, w.ActiveDays)
	assert.Equal(t, 75, w.CompletionRate)
	assert.Equal(t, dayKey(busyDay), w.MostProductiveDay)
	assert.Equal(t, 3600, w.LongestSessionSecs)
	assert.Equal(t, internal.ModeStopwatch, w.LongestSessionMode)
}

func TestWeeklySummaryMostProductiveDayTieBreaksBySessions(t *testing.T) {
	dayA := testNow.AddDate(0, 0, -3)
	dayB := testNow.AddDate(0, 0, -1)
	sessions := []internal.TimerSession{
		sessionAt(dayA, 1800, true),
		sessionAt(dayB, 900, true),
		sessionAt(dayB.Add(time.Hour), 900, true),
	}

	w := GenerateWeeklySummary(sessions, testNow)
	assert.Equal(t, dayKey(dayB), w.MostProductiveDay)
}
