package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

func TestProductivityTrendPeriodSplit(t *testing.T) {
	// Two sessions inside the last 7 days and two in the week before that;
	// the day-7 boundary itself falls in the previous period. The day-14
	// boundary and anything older are outside both windows.
	sessions := []internal.TimerSession{
		sessionAt(testNow.Add(-time.Hour), 1500, true),
		sessionAt(testNow.AddDate(0, 0, -6), 1200, false),
		sessionAt(testNow.AddDate(0, 0, -7), 900, true),
		sessionAt(testNow.AddDate(0, 0, -10), 600, true),
		sessionAt(testNow.AddDate(0, 0, -14), 600, true),
		sessionAt(testNow.AddDate(0, 0, -20), 600, true),
	}

	p := AnalyzeProductivityTrend(sessions, testNow)
	assert.Equal(t, 2, p.Current.Sessions)
	assert.Equal(t, 1500+1200, p.Current.TotalDuration)
	assert.InDelta(t, 1350, p.Current.AvgDuration, 0.001)
	assert.Equal(t, 50, p.Current.CompletionRate)

	assert.Equal(t, 2, p.Previous.Sessions)
	assert.Equal(t, 900+600, p.Previous.TotalDuration)
	assert.Equal(t, 100, p.Previous.CompletionRate)
}

func TestProductivityTrendEmptyPreviousPeriod(t *testing.T) {
	sessions := []internal.TimerSession{
		sessionAt(testNow.Add(-2*time.Hour), 1500, true),
	}

	p := AnalyzeProductivityTrend(sessions, testNow)
	assert.Equal(t, 1, p.Current.Sessions)
	assert.Zero(t, p.Previous.Sessions)
	assert.Equal(t, float64(100), p.SessionChangePct)
	assert.Equal(t, float64(100), p.DurationChangePct)
	assert.Equal(t, TrendUp, p.Trend)
}

func TestProductivityTrendNoActivityEitherPeriod(t *testing.T) {
	p := AnalyzeProductivityTrend(nil, testNow)
	assert.Zero(t, p.Current.Sessions)
	assert.Zero(t, p.Previous.Sessions)
	assert.Zero(t, p.SessionChangePct)
	assert.Equal(t, TrendStable, p.Trend)
}

func TestProductivityTrendDirectionThresholds(t *testing.T) {
	build := func(current, previous int) []internal.TimerSession {
		var sessions []internal.TimerSession
		for i := 0; i < current; i++ {
			sessions = append(sessions, sessionAt(testNow.Add(-time.Duration(i+1)*time.Hour), 600, true))
		}
		for i := 0; i < previous; i++ {
			sessions = append(sessions, sessionAt(testNow.AddDate(0, 0, -9).Add(-time.Duration(i)*time.Hour), 600, true))
		}
		return sessions
	}

	// 10% either way is still stable; beyond it flips the label.
	assert.Equal(t, TrendStable, AnalyzeProductivityTrend(build(10, 10), testNow).Trend)
	assert.Equal(t, TrendStable, AnalyzeProductivityTrend(build(11, 10), testNow).Trend)
	assert.Equal(t, TrendUp, AnalyzeProductivityTrend(build(12, 10), testNow).Trend)
	assert.Equal(t, TrendDown, AnalyzeProductivityTrend(build(8, 10), testNow).Trend)
}

func TestProductivityTrendOrderIndependent(t *testing.T) {
	sessions := []internal.TimerSession{
		sessionAt(testNow.Add(-time.Hour), 1500, true),
		sessionAt(testNow.AddDate(0, 0, -3), 1200, true),
		sessionAt(testNow.AddDate(0, 0, -10), 600, false),
	}
	forward := AnalyzeProductivityTrend(sessions, testNow)
	reversed := AnalyzeProductivityTrend([]internal.TimerSession{sessions[2], sessions[1], sessions[0]}, testNow)
	assert.Equal(t, forward, reversed)
}
