package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

type nopLogger struct{}

func (nopLogger) Info(...interface{})           {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warn(...interface{})           {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Error(...interface{})          {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debug(...interface{})          {}
func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Fatal(...interface{})          {}
func (nopLogger) Fatalf(string, ...interface{}) {}

// brokenCache fails every operation, standing in for unavailable storage.
type brokenCache struct{}

func (brokenCache) GetInsightsCache(context.Context, string) (*CachedInsights, error) {
	return nil, errors.New("storage unavailable")
}

func (brokenCache) SetInsightsCache(context.Context, string, *CachedInsights) error {
	return errors.New("storage unavailable")
}

func (brokenCache) DeleteInsightsCache(context.Context, string) error {
	return errors.New("storage unavailable")
}

func newTestEngine(t *testing.T) (*Engine, *time.Time) {
	t.Helper()
	now := testNow
	engine := NewEngine(NewMemoryCache(), nopLogger{}, WithClock(func() time.Time { return now }))
	return engine, &now
}

func TestEngineServesCachedResultWithinTTL(t *testing.T) {
	engine, now := newTestEngine(t)
	ctx := context.Background()
	sessions := dailySessions(testNow, 10, true)

	first := engine.Insights(ctx, "insights:u1", sessions)
	*now = now.Add(time.Minute)
	second := engine.Insights(ctx, "insights:u1", sessions)

	assert.Same(t, first, second)
}

func TestEngineRecomputesAfterTTL(t *testing.T) {
	engine, now := newTestEngine(t)
	ctx := context.Background()
	sessions := dailySessions(testNow, 10, true)

	first := engine.Insights(ctx, "insights:u1", sessions)
	*now = now.Add(DefaultTTL + time.Second)
	second := engine.Insights(ctx, "insights:u1", sessions)

	assert.NotSame(t, first, second)
	assert.Equal(t, *now, second.GeneratedAt)
}

func TestEngineRecomputesOnSessionCountChange(t *testing.T) {
	engine, now := newTestEngine(t)
	ctx := context.Background()
	sessions := dailySessions(testNow, 10, true)

	first := engine.Insights(ctx, "insights:u1", sessions)
	*now = now.Add(time.Minute)
	second := engine.Insights(ctx, "insights:u1", sessions[:9])

	assert.NotSame(t, first, second)
	assert.Equal(t, 9, second.DataRange.SessionsAnalyzed)
}

func TestEngineClearCacheForcesRecompute(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	sessions := dailySessions(testNow, 10, true)

	first := engine.Insights(ctx, "insights:u1", sessions)
	engine.ClearCache(ctx, "insights:u1")
	second := engine.Insights(ctx, "insights:u1", sessions)

	assert.NotSame(t, first, second)
}

func TestEngineCacheKeysAreIndependent(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	a := engine.Insights(ctx, "insights:u1", dailySessions(testNow, 10, true))
	b := engine.Insights(ctx, "insights:u2", dailySessions(testNow, 5, true))

	assert.Equal(t, 10, a.DataRange.SessionsAnalyzed)
	assert.Equal(t, 5, b.DataRange.SessionsAnalyzed)
}

func TestEngineFallsBackWhenCacheFails(t *testing.T) {
	engine := NewEngine(brokenCache{}, nopLogger{}, WithClock(func() time.Time { return testNow }))
	ctx := context.Background()

	ins := engine.Insights(ctx, "insights:u1", dailySessions(testNow, 10, true))
	assert.NotNil(t, ins)
	assert.Equal(t, 10, ins.DataRange.SessionsAnalyzed)

	// Clearing through a failing store must not panic or propagate.
	engine.ClearCache(ctx, "insights:u1")
}

func TestEngineTTLOverride(t *testing.T) {
	now := testNow
	engine := NewEngine(NewMemoryCache(), nopLogger{},
		WithTTL(time.Second),
		WithClock(func() time.Time { return now }))
	ctx := context.Background()
	sessions := dailySessions(testNow, 10, true)

	first := engine.Insights(ctx, "insights:u1", sessions)
	now = now.Add(2 * time.Second)
	second := engine.Insights(ctx, "insights:u1", sessions)

	assert.NotSame(t, first, second)
}

func TestEngineEmptySessions(t *testing.T) {
	engine, _ := newTestEngine(t)
	ins := engine.Insights(context.Background(), "insights:u1", []internal.TimerSession{})

	assert.Equal(t, QualityInsufficient, ins.DataQuality)
	assert.Equal(t, "F", ins.ProductivityScore.Grade)
	assert.Zero(t, ins.Consistency.Score)
}
