package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

func TestProductivityScoreEmptyInput(t *testing.T) {
	score := CalculateProductivityScore(nil, testNow)
	assert.Zero(t, score.Overall)
	assert.Equal(t, "F", score.Grade)
	assert.Zero(t, score.Breakdown.Completion)
	assert.Zero(t, score.Breakdown.Duration)
	assert.Zero(t, score.Breakdown.Consistency)
	assert.Zero(t, score.Breakdown.Frequency)
	assert.Zero(t, score.Breakdown.Improvement)
}

func TestProductivityScorePerfectHistory(t *testing.T) {
	// 50 completed 25-minute sessions, one per day for 50 consecutive days.
	sessions := dailySessions(testNow, 50, true)

	score := CalculateProductivityScore(sessions, testNow)
	assert.GreaterOrEqual(t, score.Overall, 85)
	assert.Contains(t, []string{"A", "A+"}, score.Grade)
	assert.Equal(t, 100, score.Breakdown.Completion)
	assert.Equal(t, 100, score.Breakdown.Duration)
	assert.Equal(t, 100, score.Breakdown.Frequency)
}

func TestCompletionSubScore(t *testing.T) {
	sessions := []internal.TimerSession{
		sessionAt(testNow.Add(-1), 1500, true),
		sessionAt(testNow.Add(-2), 1500, false),
		sessionAt(testNow.Add(-3), 1500, true),
		sessionAt(testNow.Add(-4), 1500, false),
	}
	score := CalculateProductivityScore(sessions, testNow)
	assert.Equal(t, 50, score.Breakdown.Completion)
}

func TestDurationSubScoreBands(t *testing.T) {
	assert.Equal(t, 100, durationScore(15*60))
	assert.Equal(t, 100, durationScore(30*60))
	assert.Equal(t, 100, durationScore(45*60))

	// Short averages fall off steeply.
	assert.Equal(t, 50, durationScore(7.5*60))
	assert.Equal(t, 0, durationScore(0))

	// Long averages taper at half the slope: 90 min is 100% over, -50.
	assert.Equal(t, 50, durationScore(90*60))
	assert.Greater(t, durationScore(60*60), durationScore(5*60))
}

func TestImprovementSubScore(t *testing.T) {
	// Older half abandoned, newer half completed: well above neutral.
	var sessions []internal.TimerSession
	for i := 0; i < 4; i++ {
		sessions = append(sessions, sessionAt(testNow.AddDate(0, 0, -10+i), 1500, false))
	}
	for i := 0; i < 4; i++ {
		sessions = append(sessions, sessionAt(testNow.AddDate(0, 0, -4+i), 1500, true))
	}
	score := CalculateProductivityScore(sessions, testNow)
	assert.Equal(t, 100, score.Breakdown.Improvement)

	// Too few sessions stays neutral.
	assert.Equal(t, 50, improvementScore(sessions[:4]))
}

func TestGradeSteps(t *testing.T) {
	assert.Equal(t, "A+", gradeFor(95))
	assert.Equal(t, "A", gradeFor(85))
	assert.Equal(t, "A", gradeFor(94))
	assert.Equal(t, "B", gradeFor(70))
	assert.Equal(t, "C", gradeFor(55))
	assert.Equal(t, "D", gradeFor(40))
	assert.Equal(t, "F", gradeFor(39))
}
