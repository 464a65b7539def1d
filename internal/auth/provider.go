package auth

import (
	"context"

	"github.com/Gravirei/HabitFlow-sub005/internal"
)

type Provider interface {
	ValidateTokenLocal(token string) (*internal.User, error)
	ValidateTokenRemote(ctx context.Context, token string) (*internal.User, error)
}
