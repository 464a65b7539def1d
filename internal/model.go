package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// TimerMode is the closed set of timer kinds a session can run in.
type TimerMode string

const (
	ModeStopwatch TimerMode = "stopwatch"
	ModeCountdown TimerMode = "countdown"
	ModeIntervals TimerMode = "intervals"
)

// AllTimerModes returns the known modes in a stable order.
func AllTimerModes() []TimerMode {
	return []TimerMode{ModeCountdown, ModeIntervals, ModeStopwatch}
}

// TimerSession is one completed-or-abandoned timer run. Duration is elapsed
// seconds; Completed means the timer reached its natural end condition, not
// merely that it ran.
type TimerSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mode      TimerMode `json:"mode"`
	Duration  int       `json:"duration"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
