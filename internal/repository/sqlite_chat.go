package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
)

// SQLiteChatRepo implements ChatRepo using a SQLite database.
type SQLiteChatRepo struct {
	db db.DBTX
}

func NewSQLiteChatRepo(conn db.DBTX) *SQLiteChatRepo {
	return &SQLiteChatRepo{db: conn}
}

// Append stores m with the next sequence number and writes it back to m.Seq.
func (r *SQLiteChatRepo) Append(ctx context.Context, m *domain.ChatMessage) error {
	var next int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM chat_messages`).Scan(&next); err != nil {
		return fmt.Errorf("next chat sequence: %w", err)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, seq, sender, text, intent, sent_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, next, string(m.Sender), m.Text, m.Intent, formatTime(m.SentAt))
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	m.Seq = next
	return nil
}

// List returns the last limit messages in conversation order. A limit of
// zero or less returns the whole history.
func (r *SQLiteChatRepo) List(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, seq, sender, text, intent, sent_at FROM (
			SELECT * FROM chat_messages ORDER BY seq DESC LIMIT ?
		) ORDER BY seq`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var sender, sentAt string
		if err := rows.Scan(&m.ID, &m.Seq, &sender, &m.Text, &m.Intent, &sentAt); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Sender = domain.ChatSender(sender)
		if m.SentAt, err = parseTime(sentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *SQLiteChatRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("clearing chat history: %w", err)
	}
	return nil
}
