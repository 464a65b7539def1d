package storage

import (
	"io"

	"github.com/Gravirei/HabitFlow-sub005/internal"
	"github.com/Gravirei/HabitFlow-sub005/internal/insights"
)

// NewFileRepositories builds the file-backed storage and exposes it through
// its three roles: session repository, insights cache, and closer to flush
// pending writes on shutdown.
func NewFileRepositories(sessionsFile, cacheFile string, logger internal.Logger) (SessionRepository, insights.CacheStore, io.Closer, error) {
	storage, err := NewFileStorage(sessionsFile, cacheFile, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return storage, storage, storage, nil
}

// NewPostgresRepositories builds the postgres-backed storage behind the same
// three roles as the file backend.
func NewPostgresRepositories(dsn string, logger internal.Logger) (SessionRepository, insights.CacheStore, io.Closer, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return storage, storage, storage, nil
}
