package storage

import (
	"context"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

type SessionRepository interface {
	SaveSession(ctx context.Context, session *internal.TimerSession) error
	ListSessions(ctx context.Context, userID string) ([]internal.TimerSession, error)
}
