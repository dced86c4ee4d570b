package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
)

// SQLiteWeatherRepo keeps the single most recent weather snapshot. It
// satisfies weather.SnapshotStore.
type SQLiteWeatherRepo struct {
	db db.DBTX
}

func NewSQLiteWeatherRepo(conn db.DBTX) *SQLiteWeatherRepo {
	return &SQLiteWeatherRepo{db: conn}
}

// LatestWeather returns the stored snapshot regardless of age; freshness is
// the caller's decision.
func (r *SQLiteWeatherRepo) LatestWeather(ctx context.Context) (*domain.WeatherSnapshot, error) {
	query := `SELECT pincode, location, temp_c, feels_like_c, humidity, condition, description, fetched_at
		FROM weather_snapshot WHERE id = 1`
	var w domain.WeatherSnapshot
	var fetchedAt string
	err := r.db.QueryRowContext(ctx, query).Scan(
		&w.Pincode, &w.Location, &w.TempC, &w.FeelsLikeC, &w.Humidity, &w.Condition, &w.Description, &fetchedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("weather snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning weather snapshot: %w", err)
	}
	if w.FetchedAt, err = parseTime(fetchedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SQLiteWeatherRepo) SaveWeather(ctx context.Context, snap *domain.WeatherSnapshot) error {
	query := `INSERT OR REPLACE INTO weather_snapshot
		(id, pincode, location, temp_c, feels_like_c, humidity, condition, description, fetched_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		snap.Pincode,
		snap.Location,
		snap.TempC,
		snap.FeelsLikeC,
		snap.Humidity,
		snap.Condition,
		snap.Description,
		formatTime(snap.FetchedAt),
	)
	if err != nil {
		return fmt.Errorf("saving weather snapshot: %w", err)
	}
	return nil
}
