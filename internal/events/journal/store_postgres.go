package journal

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the journal table. Applied by deploy tooling; integration
// tests run it directly.
const Schema = `
CREATE TABLE IF NOT EXISTS event_journal (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	aggregate_key TEXT NOT NULL,
	payload       JSONB NOT NULL,
	occurred_at   TIMESTAMPTZ NOT NULL,
	recorded_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS event_journal_aggregate_key_idx
	ON event_journal (aggregate_key, recorded_at);
`

// PostgresStore persists journal entries in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema applies the journal schema. Idempotent.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply journal schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, entry Entry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO event_journal (id, name, aggregate_key, payload, occurred_at, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Name, entry.AggregateKey, entry.Payload, entry.OccurredAt, entry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByKey(ctx context.Context, aggregateKey string) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, aggregate_key, payload, occurred_at, recorded_at
		 FROM event_journal
		 WHERE aggregate_key = $1
		 ORDER BY recorded_at`,
		aggregateKey,
	)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.AggregateKey, &e.Payload, &e.OccurredAt, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}
