package api

import (
	"github.com/Gravirei/HabitFlow-sub005/internal"
	"github.com/Gravirei/HabitFlow-sub005/internal/insights"
	"github.com/Gravirei/HabitFlow-sub005/internal/storage"
)

type App interface {
	Logger() internal.Logger
	SessionRepo() storage.SessionRepository
	Insights() *insights.Engine
}
