// Package insights derives productivity analytics from raw timer sessions:
// peak hours, duration patterns, mode mastery, consistency and streaks,
// period-over-period trends, a composite score, a weekly summary, and a
// prioritized recommendation list. All analyzers are pure functions over an
// unordered session bag and have defined zero-value outputs for empty input.
package insights

import (
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

// Confidence qualifies how reliable a metric is, driven by sample size.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// DataQuality is the overall sample-size tier for the full session history.
type DataQuality string

const (
	QualityInsufficient DataQuality = "insufficient" // <5 sessions
	QualityLimited      DataQuality = "limited"      // 5-19
	QualityGood         DataQuality = "good"         // 20-49
	QualityExcellent    DataQuality = "excellent"    // >=50
)

type HourlyBucket struct {
	Hour      int `json:"hour"`
	Sessions  int `json:"sessions"`
	Completed int `json:"completed"`
}

// PeakHours reports the best contiguous 3-hour window by session count.
// EndHour is the last hour the window covers, so a window starting at 23
// wraps to 23-1.
type PeakHours struct {
	StartHour      int              `json:"start_hour"`
	EndHour        int              `json:"end_hour"`
	SessionsCount  int              `json:"sessions_count"`
	CompletionRate int              `json:"completion_rate"`
	Distribution   [24]HourlyBucket `json:"distribution"`
	Confidence     Confidence       `json:"confidence"`
	Message        string           `json:"message,omitempty"`
}

// DurationTrend labels how session length is drifting over the history.
type DurationTrend string

const (
	DurationIncreasing DurationTrend = "increasing"
	DurationDecreasing DurationTrend = "decreasing"
	DurationStable     DurationTrend = "stable"
)

type DurationBucket struct {
	Label          string `json:"label"`
	MinSeconds     int    `json:"min_seconds"`
	MaxSeconds     int    `json:"max_seconds"` // 0 means unbounded
	Count          int    `json:"count"`
	CompletionRate int    `json:"completion_rate"`
}

type DurationPattern struct {
	Buckets           []DurationBucket `json:"buckets"`
	OptimalMinSeconds int              `json:"optimal_min_seconds"`
	OptimalMaxSeconds int              `json:"optimal_max_seconds"`
	AverageDuration   float64          `json:"average_duration"`
	Trend             DurationTrend    `json:"trend"`
	Confidence        Confidence       `json:"confidence"`
	Message           string           `json:"message,omitempty"`
}

type ModeStats struct {
	Mode           internal.TimerMode `json:"mode"`
	Sessions       int                `json:"sessions"`
	Completed      int                `json:"completed"`
	CompletionRate int                `json:"completion_rate"`
	TotalDuration  int                `json:"total_duration"`
	AvgDuration    float64            `json:"avg_duration"`
}

type ModeMastery struct {
	Modes      []ModeStats        `json:"modes"`
	BestMode   internal.TimerMode `json:"best_mode"`
	Confidence Confidence         `json:"confidence"`
	Message    string             `json:"message,omitempty"`
}

// ConsistencyTrend labels whether the session cadence is picking up or
// falling off.
type ConsistencyTrend string

const (
	ConsistencyImproving ConsistencyTrend = "improving"
	ConsistencyDeclining ConsistencyTrend = "declining"
	ConsistencyStable    ConsistencyTrend = "stable"
)

type Consistency struct {
	Score           int              `json:"score"`
	CurrentStreak   int              `json:"current_streak"`
	LongestStreak   int              `json:"longest_streak"`
	ActiveDays      int              `json:"active_days"`
	AvgSessionsDay  float64          `json:"avg_sessions_per_day"`
	RegularityScore int              `json:"regularity_score"`
	Trend           ConsistencyTrend `json:"trend"`
	Message         string           `json:"message,omitempty"`
}

// TrendDirection labels the week-over-week activity delta.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

type PeriodStats struct {
	Sessions       int     `json:"sessions"`
	TotalDuration  int     `json:"total_duration"`
	AvgDuration    float64 `json:"avg_duration"`
	CompletionRate int     `json:"completion_rate"`
}

type ProductivityTrend struct {
	Current           PeriodStats    `json:"current"`
	Previous          PeriodStats    `json:"previous"`
	SessionChangePct  float64        `json:"session_change_pct"`
	DurationChangePct float64        `json:"duration_change_pct"`
	Trend             TrendDirection `json:"trend"`
	Message           string         `json:"message,omitempty"`
}

type ScoreBreakdown struct {
	Completion  int `json:"completion"`
	Duration    int `json:"duration"`
	Consistency int `json:"consistency"`
	Frequency   int `json:"frequency"`
	Improvement int `json:"improvement"`
}

type ProductivityScore struct {
	Overall   int            `json:"overall"`
	Grade     string         `json:"grade"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Message   string         `json:"message,omitempty"`
}

type WeeklySummary struct {
	TotalSessions      int                `json:"total_sessions"`
	TotalDuration      int                `json:"total_duration"`
	ActiveDays         int                `json:"active_days"`
	CompletionRate     int                `json:"completion_rate"`
	MostProductiveDay  string             `json:"most_productive_day,omitempty"`
	LongestSessionSecs int                `json:"longest_session_secs"`
	LongestSessionMode internal.TimerMode `json:"longest_session_mode,omitempty"`
	Message            string             `json:"message,omitempty"`
}

// Priority orders recommendations; lower values sort first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Recommendation struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actionable  bool     `json:"actionable"`
}

type DataRange struct {
	From             time.Time `json:"from"`
	To               time.Time `json:"to"`
	SessionsAnalyzed int       `json:"sessions_analyzed"`
}

// Insights is the full analytics result. PeakHours and ModeMastery are nil
// below their sample-size thresholds; everything else is always present.
type Insights struct {
	GeneratedAt       time.Time          `json:"generated_at"`
	DataRange         DataRange          `json:"data_range"`
	DataQuality       DataQuality        `json:"data_quality"`
	ProductivityScore ProductivityScore  `json:"productivity_score"`
	Consistency       Consistency        `json:"consistency"`
	WeeklySummary     WeeklySummary      `json:"weekly_summary"`
	DurationPattern   DurationPattern    `json:"duration_pattern"`
	ProductivityTrend ProductivityTrend  `json:"productivity_trend"`
	PeakHours         *PeakHours         `json:"peak_hours,omitempty"`
	ModeMastery       *ModeMastery       `json:"mode_mastery,omitempty"`
	Recommendations   []Recommendation   `json:"recommendations"`
}
