package insights

import (
	"context"
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

// Engine wraps the analytics pipeline with a cache. A cached entry is served
// only while it is inside its TTL and its analyzed-session count matches the
// current count; the count check is a cheap invalidation proxy, so edits
// that preserve the count can be stale for at most the TTL.
type Engine struct {
	cache  CacheStore
	ttl    time.Duration
	logger internal.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithTTL overrides the default cache TTL.
func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.ttl = ttl }
}

// WithClock overrides the time source. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(cache CacheStore, logger internal.Logger, opts ...Option) *Engine {
	e := &Engine{
		cache:  cache,
		ttl:    DefaultTTL,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Insights returns analytics for the given sessions, served from cache when
// a fresh entry exists for key. Cache failures are logged and fall back to
// recomputation; the caller always gets a well-formed result.
func (e *Engine) Insights(ctx context.Context, key string, sessions []internal.TimerSession) *Insights {
	now := e.now()

	entry, err := e.cache.GetInsightsCache(ctx, key)
	if err != nil {
		e.logger.Warnf("insights: cache read failed for %q: %v", key, err)
	} else if e.valid(entry, now, len(sessions)) {
		return entry.Insights
	}

	ins := Generate(sessions, now)

	if err := e.cache.SetInsightsCache(ctx, key, &CachedInsights{
		Insights:  ins,
		CachedAt:  now,
		ExpiresAt: now.Add(e.ttl),
	}); err != nil {
		e.logger.Warnf("insights: cache write failed for %q: %v", key, err)
	}

	return ins
}

// ClearCache drops the cached entry for key.
func (e *Engine) ClearCache(ctx context.Context, key string) {
	if err := e.cache.DeleteInsightsCache(ctx, key); err != nil {
		e.logger.Warnf("insights: cache clear failed for %q: %v", key, err)
	}
}

func (e *Engine) valid(entry *CachedInsights, now time.Time, sessionCount int) bool {
	return entry != nil &&
		entry.Insights != nil &&
		now.Before(entry.ExpiresAt) &&
		entry.Insights.DataRange.SessionsAnalyzed == sessionCount
}
