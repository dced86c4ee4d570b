package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
)

// SQLiteTrackerRepo implements TrackerRepo over the tracker_state singleton.
type SQLiteTrackerRepo struct {
	db db.DBTX
}

func NewSQLiteTrackerRepo(conn db.DBTX) *SQLiteTrackerRepo {
	return &SQLiteTrackerRepo{db: conn}
}

func (r *SQLiteTrackerRepo) Get(ctx context.Context) (*TrackerState, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT steps, water, calories, quiz_index, quiz_score FROM tracker_state WHERE id = 1`)

	var s TrackerState
	if err := row.Scan(&s.Steps, &s.Water, &s.Calories, &s.Quiz.Index, &s.Quiz.Score); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tracker state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tracker state: %w", err)
	}
	return &s, nil
}

func (r *SQLiteTrackerRepo) AddSteps(ctx context.Context, n int) error {
	return r.update(ctx, "adding steps", `UPDATE tracker_state SET steps = steps + ?, updated_at = ? WHERE id = 1`, n)
}

// SetWater stores the glass count. The schema rejects values outside 0..8.
func (r *SQLiteTrackerRepo) SetWater(ctx context.Context, glasses int) error {
	return r.update(ctx, "setting water", `UPDATE tracker_state SET water = ?, updated_at = ? WHERE id = 1`, glasses)
}

func (r *SQLiteTrackerRepo) AddCalories(ctx context.Context, n int) error {
	return r.update(ctx, "adding calories", `UPDATE tracker_state SET calories = calories + ?, updated_at = ? WHERE id = 1`, n)
}

func (r *SQLiteTrackerRepo) SaveQuiz(ctx context.Context, q domain.QuizState) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tracker_state SET quiz_index = ?, quiz_score = ?, updated_at = ? WHERE id = 1`,
		q.Index, q.Score, nowUTC())
	if err != nil {
		return fmt.Errorf("saving quiz state: %w", err)
	}
	return nil
}

// Reset zeroes every counter and the quiz.
func (r *SQLiteTrackerRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tracker_state SET steps = 0, water = 0, calories = 0, quiz_index = 0, quiz_score = 0, updated_at = ?
		WHERE id = 1`, nowUTC())
	if err != nil {
		return fmt.Errorf("resetting tracker state: %w", err)
	}
	return nil
}

func (r *SQLiteTrackerRepo) update(ctx context.Context, op, query string, v int) error {
	res, err := r.db.ExecContext(ctx, query, v, nowUTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: tracker state: %w", op, ErrNotFound)
	}
	return nil
}
