package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/Gravirei/HabitFlow-sub005/internal"
	"github.com/Gravirei/HabitFlow-sub005/internal/insights"
)

// FileStorage keeps timer sessions and insights cache entries in memory and
// persists them to JSON files through debounced save workers, so bursts of
// writes collapse into one disk write.
type FileStorage struct {
	sessions      map[string]*internal.TimerSession
	userIndex     map[string][]*internal.TimerSession // userID -> sessions sorted descending by StartTime
	cache         map[string]*insights.CachedInsights // cache key -> entry
	mu            sync.RWMutex
	sessionsFile  string
	cacheFile     string
	saveSessChan  chan struct{}
	saveCacheChan chan struct{}
	shutdownChan  chan struct{}
	saveDelay     time.Duration
	logger        internal.Logger
}

func NewFileStorage(sessionsFile, cacheFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		sessions:      make(map[string]*internal.TimerSession),
		userIndex:     make(map[string][]*internal.TimerSession),
		cache:         make(map[string]*insights.CachedInsights),
		sessionsFile:  sessionsFile,
		cacheFile:     cacheFile,
		saveSessChan:  make(chan struct{}, 1),
		saveCacheChan: make(chan struct{}, 1),
		shutdownChan:  make(chan struct{}),
		saveDelay:     500 * time.Millisecond,
		logger:        logger,
	}

	if err := s.loadSessions(); err != nil {
		logger.Errorf("storage: failed to load sessions: %v", err)
		return nil, err
	}
	// A corrupt or unreadable cache file only costs a recomputation.
	if err := s.loadCache(); err != nil {
		logger.Warnf("storage: failed to load insights cache, starting empty: %v", err)
	}

	go s.saveWorker(s.saveSessChan, s.saveSessions, "sessions")
	go s.saveWorker(s.saveCacheChan, s.saveCache, "insights cache")

	return s, nil
}

func (s *FileStorage) loadSessions() error {
	file, err := os.Open(s.sessionsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var sessions []*internal.TimerSession
	if err := json.NewDecoder(file).Decode(&sessions); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range sessions {
		s.sessions[sess.ID] = sess
		s.userIndex[sess.UserID] = append(s.userIndex[sess.UserID], sess)
	}
	for userID := range s.userIndex {
		sort.Slice(s.userIndex[userID], func(i, j int) bool {
			return s.userIndex[userID][i].StartTime.After(s.userIndex[userID][j].StartTime)
		})
	}
	return nil
}

func (s *FileStorage) loadCache() error {
	file, err := os.Open(s.cacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var entries map[string]*insights.CachedInsights
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entries != nil {
		s.cache = entries
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveSessions() error {
	s.mu.RLock()
	sessions := make([]*internal.TimerSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.sessionsFile, sessions)
}

func (s *FileStorage) saveCache() error {
	s.mu.RLock()
	entries := make(map[string]*insights.CachedInsights, len(s.cache))
	for k, v := range s.cache {
		entries[k] = v
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.cacheFile, entries)
}

// saveWorker batches save signals so repeated writes within the delay window
// hit disk once.
func (s *FileStorage) saveWorker(signal chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	// Flush pending data synchronously on shutdown.
	if err := s.saveSessions(); err != nil {
		return err
	}
	return s.saveCache()
}

// --- SessionRepository ---

func (s *FileStorage) SaveSession(ctx context.Context, session *internal.TimerSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	sessions := s.userIndex[session.UserID]
	inserted := false
	for i, existing := range sessions {
		if existing.StartTime.Before(session.StartTime) {
			sessions = append(sessions[:i], append([]*internal.TimerSession{session}, sessions[i:]...)...)
			inserted = true
			break
		}
	}
	if !inserted {
		sessions = append(sessions, session)
	}
	s.userIndex[session.UserID] = sessions
	select {
	case s.saveSessChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) ListSessions(ctx context.Context, userID string) ([]internal.TimerSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ptrs, ok := s.userIndex[userID]
	if !ok {
		return []internal.TimerSession{}, nil
	}
	sessions := make([]internal.TimerSession, len(ptrs))
	for i, sess := range ptrs {
		sessions[i] = *sess
	}
	return sessions, nil
}

// --- insights.CacheStore ---

func (s *FileStorage) GetInsightsCache(ctx context.Context, key string) (*insights.CachedInsights, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[key], nil
}

func (s *FileStorage) SetInsightsCache(ctx context.Context, key string, entry *insights.CachedInsights) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = entry
	select {
	case s.saveCacheChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStorage) DeleteInsightsCache(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, key)
	select {
	case s.saveCacheChan <- struct{}{}:
	default:
	}
	return nil
}

// --- Compile-time assertions ---
var _ SessionRepository = (*FileStorage)(nil)
var _ insights.CacheStore = (*FileStorage)(nil)
