package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/circuitstrategies/circuitbot/internal/db"
	"github.com/circuitstrategies/circuitbot/internal/dispatcher"
)

// Count is the number of resolutions answered by one branch.
type Count struct {
	Kind       dispatcher.Kind `json:"kind" db:"kind"`
	CategoryID string          `json:"topic,omitempty" db:"category_id"`
	Count      int             `json:"count" db:"n"`
}

// Store tallies which catalog branch answered each message. It never stores
// the message text and is never read by the dispatcher.
type Store struct {
	db *sqlx.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return newStore(database.DB)
}

func newStore(sqlDB *sql.DB) *Store {
	return &Store{db: sqlx.NewDb(sqlDB, "sqlite")}
}

// Record stores one resolution outcome.
func (s *Store) Record(ctx context.Context, channel string, res dispatcher.Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resolutions (id, kind, category_id, channel)
		VALUES (?, ?, ?, ?)`,
		uuid.New().String(),
		string(res.Kind),
		res.CategoryID,
		channel,
	)
	if err != nil {
		return fmt.Errorf("inserting resolution: %w", err)
	}
	return nil
}

// Summary returns counts grouped by branch, most frequent first. A zero
// since includes every record.
func (s *Store) Summary(ctx context.Context, since time.Time) ([]Count, error) {
	query := `
		SELECT kind, category_id, COUNT(*) AS n
		FROM resolutions`
	var args []any
	if !since.IsZero() {
		query += ` WHERE created_at >= ?`
		args = append(args, since.UTC().Format("2006-01-02 15:04:05"))
	}
	query += `
		GROUP BY kind, category_id
		ORDER BY n DESC, kind, category_id`

	var out []Count
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("querying resolutions: %w", err)
	}
	return out, nil
}

// Total returns the number of recorded resolutions.
func (s *Store) Total(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM resolutions`); err != nil {
		return 0, fmt.Errorf("counting resolutions: %w", err)
	}
	return n, nil
}
