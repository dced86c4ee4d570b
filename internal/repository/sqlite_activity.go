package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(conn db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: conn}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.ActivityEntry) error {
	query := `INSERT INTO activity_log (id, type, minutes, steps_awarded, logged_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		string(a.Type),
		a.Minutes,
		a.StepsAwarded,
		formatTime(a.LoggedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

// List returns the whole log, oldest first.
func (r *SQLiteActivityRepo) List(ctx context.Context) ([]domain.ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, minutes, steps_awarded, logged_at FROM activity_log ORDER BY logged_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

// ListRecent returns up to limit entries, newest first.
func (r *SQLiteActivityRepo) ListRecent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, minutes, steps_awarded, logged_at FROM activity_log
		ORDER BY logged_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM activity_log`); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}
	return nil
}

func scanActivities(rows *sql.Rows) ([]domain.ActivityEntry, error) {
	var out []domain.ActivityEntry
	for rows.Next() {
		var a domain.ActivityEntry
		var typ, loggedAt string
		if err := rows.Scan(&a.ID, &typ, &a.Minutes, &a.StepsAwarded, &loggedAt); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.Type = domain.ActivityType(typ)
		t, err := parseTime(loggedAt)
		if err != nil {
			return nil, err
		}
		a.LoggedAt = t
		out = append(out, a)
	}
	return out, rows.Err()
}
