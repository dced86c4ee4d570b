package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT name, age, gender, height_cm, weight_kg, blood_group, health_issue, goal
		FROM user_profile WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.UserProfile
	var gender, issue, goal string
	err := row.Scan(&p.Name, &p.Age, &gender, &p.HeightCm, &p.WeightKg, &p.BloodGroup, &issue, &goal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.Gender = domain.Gender(gender)
	p.HealthIssue = domain.HealthIssue(issue)
	p.Goal = domain.Goal(goal)
	return &p, nil
}

// Upsert replaces the stored profile wholesale.
func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	issue := p.HealthIssue
	if issue == "" {
		issue = domain.HealthNone
	}
	query := `INSERT OR REPLACE INTO user_profile (id, name, age, gender, height_cm, weight_kg,
		blood_group, health_issue, goal, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Age,
		string(p.Gender),
		p.HeightCm,
		p.WeightKg,
		p.BloodGroup,
		string(issue),
		string(p.Goal),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
