package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
)

// SQLiteBadgeRepo implements BadgeRepo. The earned set only grows until an
// explicit reset.
type SQLiteBadgeRepo struct {
	db db.DBTX
}

func NewSQLiteBadgeRepo(conn db.DBTX) *SQLiteBadgeRepo {
	return &SQLiteBadgeRepo{db: conn}
}

func (r *SQLiteBadgeRepo) List(ctx context.Context) (domain.BadgeSet, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT badge_id FROM earned_badges`)
	if err != nil {
		return nil, fmt.Errorf("listing badges: %w", err)
	}
	defer rows.Close()

	set := domain.NewBadgeSet()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning badge: %w", err)
		}
		set.Add(domain.BadgeID(id))
	}
	return set, rows.Err()
}

// Award records id. Awarding an earned badge keeps the original timestamp.
func (r *SQLiteBadgeRepo) Award(ctx context.Context, id domain.BadgeID, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO earned_badges (badge_id, earned_at) VALUES (?, ?)`,
		string(id), formatTime(at))
	if err != nil {
		return fmt.Errorf("awarding badge %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteBadgeRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM earned_badges`); err != nil {
		return fmt.Errorf("clearing badges: %w", err)
	}
	return nil
}
