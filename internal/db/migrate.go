package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are re-run on every open, so each statement must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		id           INTEGER PRIMARY KEY CHECK(id = 1),
		name         TEXT NOT NULL,
		age          INTEGER NOT NULL CHECK(age BETWEEN 1 AND 120),
		gender       TEXT NOT NULL CHECK(gender IN ('Male','Female','Other')),
		height_cm    INTEGER NOT NULL CHECK(height_cm BETWEEN 50 AND 250),
		weight_kg    INTEGER NOT NULL CHECK(weight_kg BETWEEN 20 AND 300),
		blood_group  TEXT NOT NULL DEFAULT '',
		health_issue TEXT NOT NULL DEFAULT 'None',
		goal         TEXT NOT NULL DEFAULT '',
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tracker_state (
		id          INTEGER PRIMARY KEY CHECK(id = 1),
		steps       INTEGER NOT NULL DEFAULT 0 CHECK(steps >= 0),
		water       INTEGER NOT NULL DEFAULT 0 CHECK(water BETWEEN 0 AND 8),
		calories    INTEGER NOT NULL DEFAULT 0 CHECK(calories >= 0),
		quiz_index  INTEGER NOT NULL DEFAULT 0,
		quiz_score  INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL DEFAULT ''
	)`,

	`INSERT OR IGNORE INTO tracker_state (id) VALUES (1)`,

	`CREATE TABLE IF NOT EXISTS activity_log (
		id            TEXT PRIMARY KEY,
		type          TEXT NOT NULL,
		minutes       INTEGER NOT NULL CHECK(minutes > 0),
		steps_awarded INTEGER NOT NULL CHECK(steps_awarded >= 0),
		logged_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS mood_log (
		id        TEXT PRIMARY KEY,
		mood      TEXT NOT NULL,
		logged_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS earned_badges (
		badge_id  TEXT PRIMARY KEY,
		earned_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS weather_snapshot (
		id           INTEGER PRIMARY KEY CHECK(id = 1),
		pincode      TEXT NOT NULL,
		location     TEXT NOT NULL DEFAULT '',
		temp_c       INTEGER NOT NULL,
		feels_like_c INTEGER NOT NULL,
		humidity     INTEGER NOT NULL,
		condition    TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		fetched_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id      TEXT PRIMARY KEY,
		seq     INTEGER NOT NULL,
		sender  TEXT NOT NULL CHECK(sender IN ('user','bot')),
		text    TEXT NOT NULL,
		sent_at TEXT NOT NULL
	)`,

	// Intent tagging was added after chat history shipped.
	`ALTER TABLE chat_messages ADD COLUMN intent TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_activity_logged ON activity_log(logged_at)`,
	`CREATE INDEX IF NOT EXISTS idx_mood_logged ON mood_log(logged_at)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_chat_seq ON chat_messages(seq)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE is not idempotent in SQLite; a re-run reports the
			// column as a duplicate.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
