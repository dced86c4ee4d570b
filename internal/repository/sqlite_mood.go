package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
)

// SQLiteMoodRepo implements MoodRepo using a SQLite database.
type SQLiteMoodRepo struct {
	db db.DBTX
}

func NewSQLiteMoodRepo(conn db.DBTX) *SQLiteMoodRepo {
	return &SQLiteMoodRepo{db: conn}
}

func (r *SQLiteMoodRepo) Create(ctx context.Context, m *domain.MoodEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mood_log (id, mood, logged_at) VALUES (?, ?, ?)`,
		m.ID, string(m.Mood), formatTime(m.LoggedAt))
	if err != nil {
		return fmt.Errorf("inserting mood: %w", err)
	}
	return nil
}

// List returns the whole log, oldest first.
func (r *SQLiteMoodRepo) List(ctx context.Context) ([]domain.MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, mood, logged_at FROM mood_log ORDER BY logged_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing moods: %w", err)
	}
	defer rows.Close()
	return scanMoods(rows)
}

// ListRecent returns up to limit entries, newest first.
func (r *SQLiteMoodRepo) ListRecent(ctx context.Context, limit int) ([]domain.MoodEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mood, logged_at FROM mood_log ORDER BY logged_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent moods: %w", err)
	}
	defer rows.Close()
	return scanMoods(rows)
}

func (r *SQLiteMoodRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mood_log`); err != nil {
		return fmt.Errorf("clearing moods: %w", err)
	}
	return nil
}

func scanMoods(rows *sql.Rows) ([]domain.MoodEntry, error) {
	var out []domain.MoodEntry
	for rows.Next() {
		var m domain.MoodEntry
		var mood, loggedAt string
		if err := rows.Scan(&m.ID, &mood, &loggedAt); err != nil {
			return nil, fmt.Errorf("scanning mood: %w", err)
		}
		m.Mood = domain.MoodLabel(mood)
		t, err := parseTime(loggedAt)
		if err != nil {
			return nil, err
		}
		m.LoggedAt = t
		out = append(out, m)
	}
	return out, rows.Err()
}
