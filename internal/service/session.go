package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Gravirei/HabitFlow-sub005/internal"
	"github.com/Gravirei/HabitFlow-sub005/internal/storage"
)

var validate = validator.New()

type SessionRequest struct {
	Mode      internal.TimerMode `json:"mode" validate:"required,oneof=stopwatch countdown intervals"`
	Duration  int                `json:"duration" validate:"gte=0"`
	StartTime time.Time          `json:"start_time" validate:"required"`
	EndTime   time.Time          `json:"end_time" validate:"required,gtefield=StartTime"`
	Completed bool               `json:"completed"`
}

func ValidateSessionRequest(body *SessionRequest) error {
	return validate.Struct(body)
}

func CreateSession(ctx context.Context, sessionRepo storage.SessionRepository, user *internal.User, body *SessionRequest) (*internal.TimerSession, error) {
	session := &internal.TimerSession{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Mode:      body.Mode,
		Duration:  body.Duration,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Completed: body.Completed,
		CreatedAt: time.Now(),
	}
	if err := sessionRepo.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
