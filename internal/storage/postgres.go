package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gravirei/HabitFlow-sub005/internal"
	"github.com/Gravirei/HabitFlow-sub005/internal/insights"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- SessionRepository ---

func (p *PostgresStorage) SaveSession(ctx context.Context, s *internal.TimerSession) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO timer_sessions (id, user_id, mode, duration, start_time, end_time, completed, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.UserID, s.Mode, s.Duration, s.StartTime, s.EndTime, s.Completed, s.CreatedAt)
	if err != nil {
		p.logger.Errorf("failed to insert timer session: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) ListSessions(ctx context.Context, userID string) ([]internal.TimerSession, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, user_id, mode, duration, start_time, end_time, completed, created_at FROM timer_sessions WHERE user_id = $1 ORDER BY start_time DESC`, userID)
	if err != nil {
		p.logger.Errorf("failed to query timer sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []internal.TimerSession
	for rows.Next() {
		var s internal.TimerSession
		err := rows.Scan(&s.ID, &s.UserID, &s.Mode, &s.Duration, &s.StartTime, &s.EndTime, &s.Completed, &s.CreatedAt)
		if err != nil {
			p.logger.Errorf("failed to scan timer session: %v", err)
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// --- insights.CacheStore ---
// Entries live in a small key/jsonb table; the payload keeps the
// insights/cachedAt/expiresAt shape.

func (p *PostgresStorage) GetInsightsCache(ctx context.Context, key string) (*insights.CachedInsights, error) {
	row := p.pool.QueryRow(ctx, `SELECT entry FROM insights_cache WHERE cache_key = $1`, key)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Errorf("failed to read insights cache: %v", err)
		return nil, err
	}
	var entry insights.CachedInsights
	if err := json.Unmarshal(raw, &entry); err != nil {
		p.logger.Errorf("corrupt insights cache entry for %q: %v", key, err)
		return nil, err
	}
	return &entry, nil
}

func (p *PostgresStorage) SetInsightsCache(ctx context.Context, key string, entry *insights.CachedInsights) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `INSERT INTO insights_cache (cache_key, entry) VALUES ($1, $2) ON CONFLICT (cache_key) DO UPDATE SET entry = EXCLUDED.entry`, key, raw)
	if err != nil {
		p.logger.Errorf("failed to write insights cache: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStorage) DeleteInsightsCache(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM insights_cache WHERE cache_key = $1`, key)
	if err != nil {
		p.logger.Errorf("failed to delete insights cache: %v", err)
		return err
	}
	return nil
}

// --- UserRepository ---

func (p *PostgresStorage) GetUserByToken(ctx context.Context, token string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, token, name FROM users WHERE token = $1`, token)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Token, &u.Name); err != nil {
		p.logger.Errorf("user not found: %v", err)
		return nil, err
	}
	return &u, nil
}

// --- Compile-time assertions ---
var _ SessionRepository = (*PostgresStorage)(nil)
var _ insights.CacheStore = (*PostgresStorage)(nil)
