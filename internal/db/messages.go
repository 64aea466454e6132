package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// MessageRecord is one logged wire message.
type MessageRecord struct {
	ID         int64     `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Remote     string    `json:"remote,omitempty"`
	Direction  string    `json:"direction"`
	TypeID     int       `json:"type"`
	Kind       string    `json:"kind"`
	Game       string    `json:"game,omitempty"`
	Line       string    `json:"line"`
	Rendering  string    `json:"rendering"`
}

// KindCount is a per-kind message counter.
type KindCount struct {
	TypeID int    `json:"type"`
	Kind   string `json:"kind"`
	Count  int64  `json:"count"`
}

// MessageStore persists decoded messages and answers the inspector's
// queries over them.
type MessageStore struct {
	db *Database
}

const messagesSchema = `
CREATE TABLE IF NOT EXISTS messages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	received_at TEXT    NOT NULL,
	remote      TEXT    NOT NULL DEFAULT '',
	direction   TEXT    NOT NULL,
	type_id     INTEGER NOT NULL,
	kind        TEXT    NOT NULL,
	game        TEXT    NOT NULL DEFAULT '',
	line        TEXT    NOT NULL,
	rendering   TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_type ON messages(type_id);
CREATE INDEX IF NOT EXISTS idx_messages_game ON messages(game);
`

// NewMessageStore creates the message log schema on the given database.
func NewMessageStore(database *Database) (*MessageStore, error) {
	if _, err := database.Exec(messagesSchema); err != nil {
		return nil, fmt.Errorf("failed to create message log schema: %w", err)
	}
	return &MessageStore{db: database}, nil
}

// Append logs one message.
func (s *MessageStore) Append(rec MessageRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO messages (received_at, remote, direction, type_id, kind, game, line, rendering)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ReceivedAt.UTC().Format(time.RFC3339Nano),
		rec.Remote, rec.Direction, rec.TypeID, rec.Kind, rec.Game, rec.Line, rec.Rendering,
	)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// Recent returns the newest messages, optionally filtered by game name
// and/or type ID (pass "" / 0 to skip a filter).
func (s *MessageStore) Recent(game string, typeID, limit int) ([]MessageRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, received_at, remote, direction, type_id, kind, game, line, rendering
	          FROM messages WHERE 1=1`
	args := []interface{}{}
	if game != "" {
		query += " AND game = ?"
		args = append(args, game)
	}
	if typeID != 0 {
		query += " AND type_id = ?"
		args = append(args, typeID)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var recs []MessageRecord
	for rows.Next() {
		var rec MessageRecord
		var ts string
		if err := rows.Scan(&rec.ID, &ts, &rec.Remote, &rec.Direction,
			&rec.TypeID, &rec.Kind, &rec.Game, &rec.Line, &rec.Rendering); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		rec.ReceivedAt, _ = time.Parse(time.RFC3339Nano, ts)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// CountsByKind returns per-kind message totals, most frequent first.
func (s *MessageStore) CountsByKind() ([]KindCount, error) {
	rows, err := s.db.Query(
		`SELECT type_id, kind, COUNT(*) FROM messages
		 GROUP BY type_id, kind ORDER BY COUNT(*) DESC, type_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query kind counts: %w", err)
	}
	defer rows.Close()

	var counts []KindCount
	for rows.Next() {
		var kc KindCount
		if err := rows.Scan(&kc.TypeID, &kc.Kind, &kc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan kind count: %w", err)
		}
		counts = append(counts, kc)
	}
	return counts, rows.Err()
}

// Total returns the number of logged messages.
func (s *MessageStore) Total() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&n)
	return n, err
}

// Prune deletes the oldest rows so at most maxRows remain.
func (s *MessageStore) Prune(maxRows int) (int64, error) {
	if maxRows <= 0 {
		return 0, nil
	}
	res, err := s.db.Exec(
		`DELETE FROM messages WHERE id <= (
			SELECT id FROM messages ORDER BY id DESC LIMIT 1 OFFSET ?
		 )`, maxRows)
	if err != nil {
		return 0, fmt.Errorf("failed to prune message log: %w", err)
	}
	deleted, _ := res.RowsAffected()
	if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Msg("pruned message log")
	}
	return deleted, nil
}
